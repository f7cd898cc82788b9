package models

// Review : un avis client. Date au format calendaire YYYY-MM-DD, sans heure.
type Review struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"` // 1-5
	Text   string `json:"text"`
	Date   string `json:"date"`
}
