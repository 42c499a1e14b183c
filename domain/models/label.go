package models

// Label is a named, colored tag applicable to tasks. ColorHex holds a
// "#rrggbb" value; the format is enforced at the handler layer, the store
// accepts any text.
type Label struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	ColorHex string `db:"color_hex"`
}

func (Label) TableName() string {
	return "labels"
}
