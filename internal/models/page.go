package models

// Page is one bounded page of a post listing. Requested page numbers outside
// the valid range are clamped by the feed service, so Number always points
// at a real page.
type Page struct {
	Items      []*Post `json:"items"`
	Number     int     `json:"number"`
	Size       int     `json:"size"`
	TotalItems int64   `json:"total_items"`
	TotalPages int     `json:"total_pages"`
	HasPrev    bool    `json:"has_prev"`
	HasNext    bool    `json:"has_next"`
}
