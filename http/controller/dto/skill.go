package dto

type SkillRequest struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// SkillUpdateRequest distinguishes an absent items field from an
// explicitly empty list; when present the stored list is replaced
// wholesale.
type SkillUpdateRequest struct {
	Category string    `json:"category"`
	Items    *[]string `json:"items"`
}
