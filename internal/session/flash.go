package session

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SetFlash stores f for the next page. Failures are logged and dropped.
func (s *Session) SetFlash(ctx context.Context, f Flash) {
	raw, err := json.Marshal(f)
	if err != nil {
		return
	}
	if err = s.store.Set(ctx, s.id, FlashKey, string(raw)); err != nil {
		s.logger.ErrorContext(ctx, "set flash", slog.Any("error", err))
	}
}

// PopFlash reads and clears the pending flash.
func (s *Session) PopFlash(ctx context.Context) (Flash, bool) {
	raw, ok, err := s.store.Get(ctx, s.id, FlashKey)
	if err != nil {
		s.logger.ErrorContext(ctx, "get flash", slog.Any("error", err))
		return Flash{}, false
	}
	if !ok {
		return Flash{}, false
	}
	if err = s.store.Delete(ctx, s.id, []string{FlashKey}); err != nil {
		s.logger.ErrorContext(ctx, "clear flash", slog.Any("error", err))
	}
	var f Flash
	if err = json.Unmarshal([]byte(raw), &f); err != nil {
		return Flash{}, false
	}
	return f, true
}
