package services

import (
	"time"

	"news-app/backend/app/dto"
	"news-app/backend/app/models"
	"news-app/backend/app/repo"
	"news-app/backend/global"
)

type NewsService struct {
	news *repo.NewsRepository
	// WriterOwnOnly additionally restricts writers to deleting their own
	// pending articles. Off by default: any writer may delete any pending
	// article.
	WriterOwnOnly bool
	now           func() time.Time
}

func NewNewsService(news *repo.NewsRepository) *NewsService {
	return &NewsService{news: news, now: time.Now}
}

// SetClock replaces the time source used for "today".
func (s *NewsService) SetClock(now func() time.Time) { s.now = now }

func (s *NewsService) today() time.Time { return models.DateOnly(s.now()) }

// Create stores a new article for author. The status is always PENDING and
// the publish date defaults to today.
func (s *NewsService) Create(req dto.NewsRequest, author *models.User) (*dto.NewsResponse, error) {
	publish := s.today()
	if req.PublishDate != "" {
		d, err := dto.ParseDate(req.PublishDate)
		if err != nil {
			return nil, validationError("publishDate", "must be a date formatted as "+dto.DateLayout)
		}
		publish = models.DateOnly(*d)
	}
	n := &models.News{
		Title:         req.Title,
		TitleAr:       req.TitleAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		PublishDate:   publish,
		ImageURL:      req.ImageURL,
		Status:        models.NewsPending,
		Deleted:       false,
		AuthorID:      author.ID,
	}
	if err := s.news.Create(n); err != nil {
		return nil, err
	}
	n.Author = *author
	return newsToDTO(n), nil
}

func (s *NewsService) ListAll() ([]dto.NewsResponse, error) {
	items, err := s.news.ListActive()
	if err != nil {
		return nil, err
	}
	return newsToDTOs(items), nil
}

func (s *NewsService) ListApproved() ([]dto.NewsResponse, error) {
	return s.listByStatus(models.NewsApproved)
}

func (s *NewsService) ListPending() ([]dto.NewsResponse, error) {
	return s.listByStatus(models.NewsPending)
}

func (s *NewsService) listByStatus(status models.NewsStatus) ([]dto.NewsResponse, error) {
	items, err := s.news.ListActiveByStatus(status)
	if err != nil {
		return nil, err
	}
	return newsToDTOs(items), nil
}

func (s *NewsService) Approve(id uint) (*dto.NewsResponse, error) {
	return s.setStatus(id, models.NewsApproved)
}

func (s *NewsService) Reject(id uint) (*dto.NewsResponse, error) {
	return s.setStatus(id, models.NewsRejected)
}

// setStatus overwrites the status whatever it was; approving a rejected
// article or re-approving an approved one is allowed.
func (s *NewsService) setStatus(id uint, status models.NewsStatus) (*dto.NewsResponse, error) {
	n, err := s.news.FindByID(id)
	if err != nil {
		return nil, notFound(err, "News not found")
	}
	if err := s.news.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	n.Status = status
	return newsToDTO(n), nil
}

// Delete removes an article. Admins may delete anything; writers only
// articles still PENDING; everyone else nothing.
func (s *NewsService) Delete(id uint, actor *models.User) error {
	n, err := s.news.FindByID(id)
	if err != nil {
		return notFound(err, "News not found")
	}
	switch {
	case actor.HasRole(models.RoleAdmin):
	case actor.HasRole(models.RoleWriter):
		if n.Status != models.NewsPending {
			return newError(ErrForbidden, "Writers can only delete pending news")
		}
		if s.WriterOwnOnly && n.AuthorID != actor.ID {
			return newError(ErrForbidden, "Writers can only delete their own news")
		}
	default:
		return newError(ErrForbidden, "You are not authorized to delete news")
	}
	return s.news.Delete(id)
}

// SweepExpired soft deletes every live article whose publish date is before
// today, one row at a time, and returns how many it marked.
func (s *NewsService) SweepExpired() (int, error) {
	expired, err := s.news.FindExpired(s.today())
	if err != nil {
		return 0, err
	}
	marked := 0
	for _, n := range expired {
		if err := s.news.MarkDeleted(n.ID); err != nil {
			return marked, err
		}
		marked++
	}
	if marked > 0 {
		global.Logger.Info().Int("count", marked).Msg("expired news soft deleted")
	}
	return marked, nil
}

func newsToDTO(n *models.News) *dto.NewsResponse {
	return &dto.NewsResponse{
		ID:            n.ID,
		Title:         n.Title,
		TitleAr:       n.TitleAr,
		Description:   n.Description,
		DescriptionAr: n.DescriptionAr,
		PublishDate:   n.PublishDate.Format(dto.DateLayout),
		ImageURL:      n.ImageURL,
		Status:        string(n.Status),
		AuthorName:    n.Author.Username,
	}
}

func newsToDTOs(items []models.News) []dto.NewsResponse {
	out := make([]dto.NewsResponse, 0, len(items))
	for i := range items {
		out = append(out, *newsToDTO(&items[i]))
	}
	return out
}
