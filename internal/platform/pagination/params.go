package pagination

// defaultLimit is the page size used when the client sends none.
const defaultLimit = 20

// Params embeds into Huma input structs of paginated listings, e.g. the
// card list endpoint.
type Params struct {
	Cursor string `query:"cursor" doc:"Opaque pagination cursor from previous response"`
	Limit  int    `query:"limit"  doc:"Maximum cards per page"                          default:"20" minimum:"1" maximum:"100"`
}

// DefaultLimit returns the requested limit, falling back to the default
// when the field was omitted.
func (p Params) DefaultLimit() int {
	if p.Limit <= 0 {
		return defaultLimit
	}
	return p.Limit
}
