// internal/types/types.go
package types

// Handle — ссылка на слот в арене сущностей.
// Gen защищает от устаревших ссылок: после удаления сущности поколение слота меняется.
type Handle struct {
	Index uint32
	Gen   uint32
}

// NilHandle never resolves to a live entity; valid generations start at 1.
var NilHandle = Handle{}

// IsNil reports whether h was never assigned.
func (h Handle) IsNil() bool {
	return h.Gen == 0
}
