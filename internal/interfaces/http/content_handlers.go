package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tours/internal/auth"
	"tours/internal/entities"
	"tours/internal/repository"
)

const maxImageSize = 5 << 20

type NewsletterRequest struct {
	Email string `json:"email"`
}

func (s *Server) ListReviewsHandler(c echo.Context) error {
	var (
		f   repository.ReviewFilter
		err error
	)
	if f.PackageID, err = queryInt64(c, "packageId"); err != nil {
		return err
	}
	if f.EventID, err = queryInt64(c, "eventId"); err != nil {
		return err
	}

	reviews, err := s.svc.Reviews.List(c.Request().Context(), f)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reviews)
}

func (s *Server) CreateReviewHandler(c echo.Context) error {
	var review entities.Review
	if err := c.Bind(&review); err != nil {
		return err
	}
	review.UserID = auth.UserID(c)

	if err := s.svc.Reviews.Create(c.Request().Context(), &review); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, review)
}

func (s *Server) SubscribeHandler(c echo.Context) error {
	var request NewsletterRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	sub, err := s.svc.Newsletter.Subscribe(c.Request().Context(), request.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sub)
}

func (s *Server) UnsubscribeHandler(c echo.Context) error {
	var request NewsletterRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	if err := s.svc.Newsletter.Unsubscribe(c.Request().Context(), request.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Unsubscribed"})
}

// CreateContactQueryHandler answers 201 once the query is stored; notification
// failures never reach the visitor.
func (s *Server) CreateContactQueryHandler(c echo.Context) error {
	var q entities.ContactQuery
	if err := c.Bind(&q); err != nil {
		return err
	}

	if err := s.svc.Contact.Create(c.Request().Context(), &q); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, q)
}

func (s *Server) ListContactQueriesHandler(c echo.Context) error {
	queries, err := s.svc.Contact.List(c.Request().Context(), repository.ContactQueryFilter{
		Status:     entities.ContactQueryStatus(c.QueryParam("status")),
		Priority:   entities.Priority(c.QueryParam("priority")),
		AssignedTo: c.QueryParam("assignedTo"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, queries)
}

func (s *Server) GetContactQueryHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	q, err := s.svc.Contact.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, q)
}

func (s *Server) UpdateContactQueryHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var q entities.ContactQuery
	if err := c.Bind(&q); err != nil {
		return err
	}
	q.ID = id

	if err := s.svc.Contact.Update(c.Request().Context(), &q); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, q)
}

func (s *Server) DeleteContactQueryHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := s.svc.Contact.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) UploadImageHandler(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return entities.NewFieldError("image", "no image uploaded")
	}
	if file.Size > maxImageSize {
		return entities.NewFieldError("image", "must be at most 5MB")
	}

	contentType := file.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return entities.NewFieldError("image", "only image files are allowed")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, maxImageSize+1))
	if err != nil {
		return err
	}
	if len(content) > maxImageSize {
		return entities.NewFieldError("image", "must be at most 5MB")
	}

	url, err := s.svc.Images.Upload(c.Request().Context(), file.Filename, contentType, content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"imageUrl": url})
}

func (s *Server) DashboardHandler(c echo.Context) error {
	stats, err := s.svc.CRM.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}
