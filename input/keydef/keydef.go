package keydef

import (
	"errors"
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/mic006/termui/input/event"
	"github.com/mic006/termui/input/utils"
)

// Catalog configuration errors. These are caller bugs in the key
// definitions, not runtime conditions.
var (
	ErrEmptyCatalog      = errors.New("key catalog is empty")
	ErrEmptySequence     = errors.New("key definition has an empty sequence")
	ErrDuplicateSequence = errors.New("duplicate escape sequence")
)

// KeyDefinition binds one escape sequence to the event it denotes.
//
// Sequence holds the bytes that follow the initial ESC byte; the caller
// feeding the matcher is expected to have stripped the ESC already.
type KeyDefinition struct {
	Sequence string
	Event    event.Event
}

func (k KeyDefinition) Hash() uint64 {
	hashed, err := hashstructure.Hash(k.Sequence, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash key definition: %v", err))
	return hashed
}

func (k KeyDefinition) Equals(other KeyDefinition) bool {
	return k.Hash() == other.Hash()
}

// Validate checks a catalog for configuration errors before it is
// compiled into a trie. Unlike the trie builder, which only sees the
// colliding path, Validate can name both events that claim the same
// sequence.
func Validate(defs []KeyDefinition) error {
	if len(defs) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[uint64]KeyDefinition, len(defs))
	for _, def := range defs {
		if def.Sequence == "" {
			return fmt.Errorf("%w: event %s", ErrEmptySequence, def.Event)
		}
		hash := def.Hash()
		if prev, ok := seen[hash]; ok && prev.Sequence == def.Sequence {
			return fmt.Errorf("%w: %q maps to both %s and %s",
				ErrDuplicateSequence, def.Sequence, prev.Event, def.Event)
		}
		seen[hash] = def
	}
	return nil
}
