package ui

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"time"
)

// DefaultShareText accompanies shared links.
const DefaultShareText = "Interesante artículo sobre desarrollo:"

// NotificationDuration is how long a toast stays visible.
const NotificationDuration = 4 * time.Second

const (
	msgCopied     = "¡Enlace copiado al portapapeles!"
	msgCopyFailed = "Error al copiar enlace"
	msgCodeCopied = "Código copiado"
)

// ShareTarget is what gets shared.
type ShareTarget struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
}

// Sharer is a platform share capability.
type Sharer interface {
	Available() bool
	Share(ctx context.Context, target ShareTarget) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Level is the kind of toast.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier shows a transient notification.
type Notifier interface {
	Notify(level Level, message string)
}

// ClipboardError reports a failed copy.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string { return fmt.Sprintf("copying to clipboard: %v", e.Err) }
func (e *ClipboardError) Unwrap() error { return e.Err }

// Share uses the platform share when available. Otherwise it copies the
// URL to the clipboard and raises a success or failure toast. A nil sharer
// counts as unavailable. Each call is independent of previous ones.
func Share(ctx context.Context, target ShareTarget, sharer Sharer, clip Clipboard, n Notifier) error {
	if target.Text == "" {
		target.Text = DefaultShareText
	}
	if sharer != nil && sharer.Available() {
		if err := sharer.Share(ctx, target); err != nil {
			return fmt.Errorf("sharing %s: %w", target.URL, err)
		}
		return nil
	}
	return CopyLink(ctx, target.URL, clip, n)
}

// CopyLink copies text and notifies the outcome.
func CopyLink(ctx context.Context, text string, clip Clipboard, n Notifier) error {
	if clip == nil {
		n.Notify(LevelError, msgCopyFailed)
		return &ClipboardError{Err: fmt.Errorf("no clipboard available")}
	}
	if err := clip.WriteText(ctx, text); err != nil {
		n.Notify(LevelError, msgCopyFailed)
		return &ClipboardError{Err: err}
	}
	n.Notify(LevelSuccess, msgCopied)
	return nil
}

// OSC52Clipboard copies through the terminal using the OSC 52 escape
// sequence, which most modern terminal emulators honour.
type OSC52Clipboard struct {
	W io.Writer
}

func (c OSC52Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	seq := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\a"
	_, err := io.WriteString(c.W, seq)
	return err
}

// WriterNotifier prints toasts as single lines.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Notify(level Level, message string) {
	fmt.Fprintf(n.W, "[%s] %s\n", level, message)
}
