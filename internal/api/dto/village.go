package dto

type RoadsResponse struct {
	Locations []string            `json:"locations"`
	Roads     map[string][]string `json:"roads"`
	MailRoute []string            `json:"mail_route"`
}

type RouteResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Route []string `json:"route"`
	Steps int      `json:"steps"`
}
