package core

// Entity is a generational handle identifying a row of components.
// The ID names a slot; the Version distinguishes successive occupants of
// that slot, so a handle kept across a destroy never aliases a new entity.
// The zero value is never a live entity.
type Entity struct {
	ID      uint32 `json:"id"`
	Version uint32 `json:"version"`
}

// IsZero reports whether e is the absent entity.
func (e Entity) IsZero() bool {
	return e == Entity{}
}
