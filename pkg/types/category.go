package types

type Category struct {
	ID   int    `db:"id"`
	Type string `db:"type"`
}
