package command

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Token prefixes the hidden "open computer folder" chat command
// It is not a registered command; the server only ever emits it inside clickable chat text
const Token = "/computercraft open-computer "

// maxComputerID bounds parsed ids to the 32-bit signed range used for computer ids
const maxComputerID = math.MaxInt32

// StorageProvider yields the storage root of the active local session
// ok is false when there is no local server (e.g. connected to a remote one)
type StorageProvider interface {
	StorageDir() (dir string, ok bool)
}

// StorageFunc adapts a function to StorageProvider
type StorageFunc func() (string, bool)

// StorageDir implements StorageProvider
func (f StorageFunc) StorageDir() (string, bool) {
	return f()
}

// Opener reveals a directory in an external viewer
// Implementations must not block the caller
type Opener interface {
	Open(path string)
}

// OpenerFunc adapts a function to Opener
type OpenerFunc func(path string)

// Open implements Opener
func (f OpenerFunc) Open(path string) {
	f(path)
}

// Interceptor recognizes the open-computer command in outgoing chat
type Interceptor struct {
	storage StorageProvider
	opener  Opener
	stat    func(string) (fs.FileInfo, error)
	log     *zap.Logger
}

// Option configures an Interceptor
type Option func(*Interceptor)

// WithLogger sets the logger used for debug tracing of matched commands
func WithLogger(log *zap.Logger) Option {
	return func(i *Interceptor) {
		if log != nil {
			i.log = log
		}
	}
}

// NewInterceptor creates an Interceptor; a nil storage or opener disables it
func NewInterceptor(storage StorageProvider, opener Opener, opts ...Option) *Interceptor {
	i := &Interceptor{
		storage: storage,
		opener:  opener,
		stat:    os.Stat,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// TryHandle returns true if text is the open-computer command for an existing
// computer folder, after handing that folder to the opener exactly once
// Every other input returns false with no side effects, so the host delivers it as normal chat
func (i *Interceptor) TryHandle(text string) bool {
	if !strings.HasPrefix(text, Token) {
		return false
	}
	if i == nil || i.storage == nil || i.opener == nil {
		return false
	}

	id, ok := ParseComputerID(strings.TrimSpace(text[len(Token):]))
	if !ok {
		return false
	}

	root, ok := i.storage.StorageDir()
	if !ok || root == "" {
		return false
	}

	dir := ComputerDir(root, id)
	info, err := i.stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}

	i.log.Debug("opening computer folder", zap.Int("id", id), zap.String("path", dir))
	i.opener.Open(dir)
	return true
}

// ParseComputerID parses a non-negative decimal computer id
// Only ASCII digits are accepted; signs, inner whitespace and values above 2147483647 fail
func ParseComputerID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for j := 0; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n > maxComputerID {
		return 0, false
	}
	return int(n), true
}

// ComputerDir returns the storage folder of computer id under root
func ComputerDir(root string, id int) string {
	return filepath.Join(root, "computer", strconv.Itoa(id))
}
