package metrics

// Attribute keys shared by the OTel instruments.
const (
	AttrMethod = "method"
	AttrPath   = "path"
	AttrStatus = "status"
	AttrTable  = "table"
	AttrView   = "view"
)
