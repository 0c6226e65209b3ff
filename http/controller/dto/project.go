package dto

type ProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tech        []string `json:"tech"`
	Github      string   `json:"github"`
	Live        string   `json:"live"`
}
