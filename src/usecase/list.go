package usecase

import (
	"context"
	"sync"

	"wearlog/src/domain"

	"github.com/sirupsen/logrus"
)

// ListSnapshot はコメント一覧セッションのある時点の状態
// Items が nil の間は一度もロードが完了していないことを表す
// （ロード済みで0件の場合は空スライスになる）
type ListSnapshot struct {
	Items         []domain.Comment     `json:"items"`
	Page          int                  `json:"page"`
	TotalPages    int                  `json:"totalPages"`
	TotalElements int                  `json:"totalElements"`
	Filter        domain.CommentFilter `json:"-"`
	LastError     *domain.APIError     `json:"lastError,omitempty"`
}

// HasNext reports whether a next page exists (§ページ境界の不変条件)
func (s ListSnapshot) HasNext() bool {
	return s.Page+1 < s.TotalPages
}

// HasPrev reports whether a previous page exists
func (s ListSnapshot) HasPrev() bool {
	return s.Page > 0
}

// RowNumber returns the display number for the item at index on this page
func (s ListSnapshot) RowNumber(index int) int {
	return s.TotalElements - (s.Page*domain.PageSize + index)
}

// ListController owns the fetch lifecycle of the paginated, filterable
// comment list. Every page or filter change issues one asynchronous fetch
// tagged with a monotonically increasing sequence number; a response is
// applied only while its sequence is still the latest, so a slow earlier
// request can never overwrite a newer page's result. Superseded requests
// are not aborted at the transport level, their results are just ignored.
type ListController struct {
	repo   domain.CommentRepository
	logger *logrus.Logger

	// OnChange は状態が適用されるたびに呼ばれる（破棄されたレスポンスでは呼ばれない）
	OnChange func(ListSnapshot)

	mu            sync.Mutex
	seq           uint64
	page          int
	filter        domain.CommentFilter
	items         []domain.Comment
	totalPages    int
	totalElements int
	lastErr       *domain.APIError
}

// NewListController creates a list controller for one list session
func NewListController(repo domain.CommentRepository, logger *logrus.Logger) *ListController {
	return &ListController{
		repo:   repo,
		logger: logger,
	}
}

// Load issues the initial fetch (fetch-on-mount). The returned channel is
// closed once the tagged response has been applied or discarded; callers
// that only observe state via OnChange may ignore it.
func (c *ListController) Load(ctx context.Context) <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatch(ctx)
}

// Reload re-fetches the current page with the current filter
func (c *ListController) Reload(ctx context.Context) <-chan struct{} {
	return c.Load(ctx)
}

// SetPage moves to the given page and refetches. The page is clamped into
// valid bounds: never negative, and below totalPages once totals are known.
func (c *ListController) SetPage(ctx context.Context, page int) <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	if page < 0 {
		page = 0
	}
	if c.totalPages > 0 && page >= c.totalPages {
		page = c.totalPages - 1
	}
	c.page = page
	return c.dispatch(ctx)
}

// NextPage advances one page. 次ページが無い場合は何もしない
func (c *ListController) NextPage(ctx context.Context) <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.page+1 >= c.totalPages {
		return closedChan()
	}
	c.page++
	return c.dispatch(ctx)
}

// PrevPage moves back one page. 先頭ページでは何もしない
func (c *ListController) PrevPage(ctx context.Context) <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.page == 0 {
		return closedChan()
	}
	c.page--
	return c.dispatch(ctx)
}

// CommitFilters applies a committed filter set and refetches.
// 結果の構成が変わるため必ず先頭ページに戻す
func (c *ListController) CommitFilters(ctx context.Context, filter domain.CommentFilter) <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filter = filter
	c.page = 0
	return c.dispatch(ctx)
}

// RemoveFilter drops a single predicate from the committed set and refetches
func (c *ListController) RemoveFilter(ctx context.Context, key domain.FilterKey) <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filter = c.filter.Without(key)
	c.page = 0
	return c.dispatch(ctx)
}

// ResetFilters clears every predicate and refetches from the first page
func (c *ListController) ResetFilters(ctx context.Context) <-chan struct{} {
	return c.CommitFilters(ctx, domain.CommentFilter{})
}

// ApplyCreated prepends a comment the backend has just accepted, without
// waiting for a refetch. totalElements / totalPages are intentionally left
// as-is; the next page or filter change reconciles them via a real fetch.
func (c *ListController) ApplyCreated(comment domain.Comment) {
	c.mu.Lock()
	if c.items == nil {
		c.items = []domain.Comment{comment}
	} else {
		c.items = append([]domain.Comment{comment}, c.items...)
	}
	snap := c.snapshotLocked()
	onChange := c.OnChange
	c.mu.Unlock()

	c.logger.WithField("comment_id", comment.ID).Info("作成されたコメントを一覧へ反映しました")
	if onChange != nil {
		onChange(snap)
	}
}

// Snapshot returns a copy of the current list state
func (c *ListController) Snapshot() ListSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// dispatch は呼び出し元が mu を保持した状態で呼ぶこと
func (c *ListController) dispatch(ctx context.Context) <-chan struct{} {
	c.seq++
	seq := c.seq
	page := c.page
	filter := c.filter
	done := make(chan struct{})

	go func() {
		defer close(done)

		result, err := c.repo.List(ctx, page, filter)

		c.mu.Lock()
		if seq != c.seq {
			c.mu.Unlock()
			c.logger.WithFields(logrus.Fields{
				"seq":    seq,
				"latest": c.seq,
				"page":   page,
			}).Debug("古い一覧レスポンスを破棄しました")
			return
		}

		if err != nil {
			c.lastErr = domain.AsAPIError(err)
			c.logger.WithError(err).WithField("page", page).Warn("コメント一覧の取得に失敗")
		} else {
			items := result.Content
			if items == nil {
				items = []domain.Comment{}
			}
			c.items = items
			c.totalPages = result.TotalPages
			c.totalElements = result.TotalElements
			c.lastErr = nil
		}

		snap := c.snapshotLocked()
		onChange := c.OnChange
		c.mu.Unlock()

		if onChange != nil {
			onChange(snap)
		}
	}()

	return done
}

func (c *ListController) snapshotLocked() ListSnapshot {
	var items []domain.Comment
	if c.items != nil {
		items = make([]domain.Comment, len(c.items))
		copy(items, c.items)
	}
	return ListSnapshot{
		Items:         items,
		Page:          c.page,
		TotalPages:    c.totalPages,
		TotalElements: c.totalElements,
		Filter:        c.filter,
		LastError:     c.lastErr,
	}
}

func closedChan() <-chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}
