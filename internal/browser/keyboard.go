package browser

import (
	"strings"
	"sync"
)

// Key is one of the keys the widget reacts to. Everything else is the input
// layer's business.
type Key int

const (
	KeyNone Key = iota
	// KeyBackspace opens the parent folder.
	KeyBackspace
	// KeySpace activates the focused row with single-click semantics.
	KeySpace
	// KeyEnter activates the focused row with double-click semantics.
	KeyEnter
)

const focusTagPrefix = "filegrid-"

// FocusTag builds the identifier a renderer stamps on a focused row so key
// events can be routed back to the owning instance. Instance IDs never
// contain '-', so the tag parses unambiguously even when file IDs do.
func FocusTag(instanceID, fileID string) string {
	return focusTagPrefix + instanceID + "-" + fileID
}

func parseFocusTag(tag string) (instanceID, fileID string, ok bool) {
	rest, found := strings.CutPrefix(tag, focusTagPrefix)
	if !found {
		return "", "", false
	}
	instanceID, fileID, found = strings.Cut(rest, "-")
	if !found || instanceID == "" {
		return "", "", false
	}
	return instanceID, fileID, true
}

// The key registry is process-wide, mirroring a document-level listener.
// Instances join on Activate and leave on Deactivate; routing a key to a tag
// that matches no active instance is ignored, not an error.
var (
	registryMu sync.Mutex
	registry   = make(map[string]*Instance)
)

func attachInstance(b *Instance) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[b.id] = b
}

func detachInstance(id string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, id)
}

// DispatchKey routes a key event to the active instance identified by the
// focus tag. It reports whether any instance consumed the event.
func DispatchKey(focusTag string, key Key) bool {
	instanceID, fileID, ok := parseFocusTag(focusTag)
	if !ok {
		return false
	}

	registryMu.Lock()
	inst := registry[instanceID]
	registryMu.Unlock()

	if inst == nil {
		return false
	}
	return inst.handleKey(fileID, key)
}
