package cards

// CardCreateOutput for POST /cards (201 Created)
type CardCreateOutput struct {
	Location string `header:"Location" doc:"URL of created card"`
	Body     Card
}

// CardGetOutput for GET /cards/{id}
type CardGetOutput struct {
	Body Card
}

// ListData is the card list payload.
type ListData struct {
	Cards []Card `json:"cards" doc:"Cards on this page"`
	Total int    `json:"total" doc:"Total cards owned by the caller"`
}

// CardListOutput for GET /cards
type CardListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ListData
}

// CardUpdateOutput for PATCH /cards/{id}
type CardUpdateOutput struct {
	Body Card
}
