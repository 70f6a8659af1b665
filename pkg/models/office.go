package models

type Office struct {
	OfficeID   int     `json:"officeID,omitempty"`
	OfficeName string  `json:"officeName" binding:"required"`
	Address    *string `json:"address"`
}
