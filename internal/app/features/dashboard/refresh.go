// internal/app/features/dashboard/refresh.go
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/imsapi"
	"github.com/kestrelworks/invdash/internal/app/system/auth"
	"github.com/kestrelworks/invdash/internal/app/system/flash"
	"github.com/kestrelworks/invdash/internal/app/system/timeouts"
	"github.com/kestrelworks/invdash/internal/app/system/uistate"
	"github.com/kestrelworks/invdash/internal/app/system/viewcache"
)

// refresh fetches the summary and the filtered documents and stores the
// result tagged with the state's generation. The store is conditional:
// if a later toggle already stored a newer snapshot, this one is
// discarded, so out-of-order completions can never roll the view back.
//
// Both fetches are best-effort. Any failure returns a single notification
// for the caller to render and leaves the previous snapshot (if any) in
// place; partial success is not distinguished.
func (h *Handler) refresh(ctx context.Context, u *auth.SessionUser, st uistate.State) *flash.Note {
	rid := uuid.NewString()[:8]
	log := h.Log.With(
		zap.String("refresh_id", rid),
		zap.Uint64("generation", st.Generation))

	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	h.Views.SetLoading(u.SID, true)

	summary, err := h.API.Summary(ctx, u.ID)
	if err != nil {
		h.Views.SetLoading(u.SID, false)
		return h.fetchFailure(log, "summary", err)
	}

	docs, count, err := h.API.FilterDocuments(ctx, u.ID, st.Filters)
	if err != nil {
		h.Views.SetLoading(u.SID, false)
		return h.fetchFailure(log, "documents", err)
	}

	snap := viewcache.Snapshot{
		Summary:    summary,
		Documents:  docs,
		MatchCount: count,
		Generation: st.Generation,
		FetchedAt:  time.Now(),
	}
	if !h.Views.StoreIfCurrent(u.SID, snap) {
		log.Debug("stale refresh discarded")
		return nil
	}

	log.Debug("dashboard refreshed",
		zap.Int("documents", len(docs)),
		zap.Int("match_count", count))
	return nil
}

func (h *Handler) fetchFailure(log *zap.Logger, op string, err error) *flash.Note {
	log.Warn("dashboard fetch failed", zap.String("op", op), zap.Error(err))
	if imsapi.IsTransport(err) {
		return &flash.Note{
			Message: "Cannot reach the inventory service at " + h.API.BaseURL() + ".",
			Kind:    flash.KindError,
		}
	}
	return &flash.Note{
		Message: "Could not load dashboard data. Please try again.",
		Kind:    flash.KindError,
	}
}
