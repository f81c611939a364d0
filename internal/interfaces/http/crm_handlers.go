package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"tours/internal/auth"
	"tours/internal/entities"
	"tours/internal/repository"
)

// resource wires the five admin CRUD routes of one CRM entity.
type resource[T any] struct {
	list   func(c echo.Context) (any, error)
	get    func(ctx context.Context, id int64) (*T, error)
	create func(ctx context.Context, v *T) error
	update func(ctx context.Context, v *T) error
	delete func(ctx context.Context, id int64) error
	setID  func(v *T, id int64)

	// onCreate fills server side fields such as the author.
	onCreate func(c echo.Context, v *T)
}

func (r resource[T]) register(g *echo.Group, path string) {
	g.GET(path, r.listHandler)
	g.GET(path+"/:id", r.getHandler)
	g.POST(path, r.createHandler)
	g.PUT(path+"/:id", r.updateHandler)
	g.DELETE(path+"/:id", r.deleteHandler)
}

func (r resource[T]) listHandler(c echo.Context) error {
	items, err := r.list(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (r resource[T]) getHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	v, err := r.get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

func (r resource[T]) createHandler(c echo.Context) error {
	var v T
	if err := c.Bind(&v); err != nil {
		return err
	}
	if r.onCreate != nil {
		r.onCreate(c, &v)
	}

	if err := r.create(c.Request().Context(), &v); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, v)
}

func (r resource[T]) updateHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var v T
	if err := c.Bind(&v); err != nil {
		return err
	}
	r.setID(&v, id)

	if err := r.update(c.Request().Context(), &v); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

func (r resource[T]) deleteHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := r.delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func author(c echo.Context) *string {
	id := auth.UserID(c)
	if id == "" {
		return nil
	}
	return &id
}

func (s *Server) registerCRMRoutes(admin *echo.Group) {
	crm := s.svc.CRM

	resource[entities.Customer]{
		list: func(c echo.Context) (any, error) {
			return crm.ListCustomers(c.Request().Context(), repository.CustomerFilter{
				Status:       c.QueryParam("status"),
				CustomerType: c.QueryParam("customerType"),
				AssignedTo:   c.QueryParam("assignedTo"),
				Search:       c.QueryParam("search"),
			})
		},
		get:    crm.GetCustomer,
		create: crm.CreateCustomer,
		update: crm.UpdateCustomer,
		delete: crm.DeleteCustomer,
		setID:  func(v *entities.Customer, id int64) { v.ID = id },
	}.register(admin, "/customers")
	admin.GET("/customers/:id/interactions", s.CustomerInteractionsHandler)

	resource[entities.Lead]{
		list: func(c echo.Context) (any, error) {
			return crm.ListLeads(c.Request().Context(), repository.LeadFilter{
				Status:     c.QueryParam("status"),
				Priority:   entities.Priority(c.QueryParam("priority")),
				Source:     c.QueryParam("source"),
				AssignedTo: c.QueryParam("assignedTo"),
				Search:     c.QueryParam("search"),
			})
		},
		get:    crm.GetLead,
		create: crm.CreateLead,
		update: crm.UpdateLead,
		delete: crm.DeleteLead,
		setID:  func(v *entities.Lead, id int64) { v.ID = id },
	}.register(admin, "/leads")
	admin.GET("/leads/:id/activities", s.LeadActivitiesHandler)
	admin.POST("/leads/:id/activities", s.AddLeadActivityHandler)

	resource[entities.Opportunity]{
		list: func(c echo.Context) (any, error) {
			customerID, err := queryInt64(c, "customerId")
			if err != nil {
				return nil, err
			}
			return crm.ListOpportunities(c.Request().Context(), repository.OpportunityFilter{
				Stage:      c.QueryParam("stage"),
				AssignedTo: c.QueryParam("assignedTo"),
				CustomerID: customerID,
			})
		},
		get:    crm.GetOpportunity,
		create: crm.CreateOpportunity,
		update: crm.UpdateOpportunity,
		delete: crm.DeleteOpportunity,
		setID:  func(v *entities.Opportunity, id int64) { v.ID = id },
	}.register(admin, "/opportunities")

	resource[entities.Task]{
		list: func(c echo.Context) (any, error) {
			return crm.ListTasks(c.Request().Context(), repository.TaskFilter{
				Status:     c.QueryParam("status"),
				Priority:   entities.Priority(c.QueryParam("priority")),
				AssignedTo: c.QueryParam("assignedTo"),
			})
		},
		get:      crm.GetTask,
		create:   crm.CreateTask,
		update:   crm.UpdateTask,
		delete:   crm.DeleteTask,
		setID:    func(v *entities.Task, id int64) { v.ID = id },
		onCreate: func(c echo.Context, v *entities.Task) { v.CreatedBy = author(c) },
	}.register(admin, "/tasks")

	resource[entities.EmailTemplate]{
		list: func(c echo.Context) (any, error) {
			active, err := queryBool(c, "active")
			if err != nil {
				return nil, err
			}
			return crm.ListEmailTemplates(c.Request().Context(), repository.EmailTemplateFilter{
				Category: c.QueryParam("category"),
				Active:   active,
			})
		},
		get:    crm.GetEmailTemplate,
		create: crm.CreateEmailTemplate,
		update: crm.UpdateEmailTemplate,
		delete: crm.DeleteEmailTemplate,
		setID:  func(v *entities.EmailTemplate, id int64) { v.ID = id },
	}.register(admin, "/email-templates")

	resource[entities.EmailCampaign]{
		list: func(c echo.Context) (any, error) {
			return crm.ListEmailCampaigns(c.Request().Context(), repository.EmailCampaignFilter{
				Status: c.QueryParam("status"),
			})
		},
		get:      crm.GetEmailCampaign,
		create:   crm.CreateEmailCampaign,
		update:   crm.UpdateEmailCampaign,
		delete:   crm.DeleteEmailCampaign,
		setID:    func(v *entities.EmailCampaign, id int64) { v.ID = id },
		onCreate: func(c echo.Context, v *entities.EmailCampaign) { v.CreatedBy = author(c) },
	}.register(admin, "/email-campaigns")
	admin.POST("/email-campaigns/:id/send", s.SendCampaignHandler)
}

func (s *Server) CustomerInteractionsHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	interactions, err := s.svc.CRM.CustomerInteractions(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, interactions)
}

func (s *Server) LeadActivitiesHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	activities, err := s.svc.CRM.LeadActivities(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, activities)
}

func (s *Server) AddLeadActivityHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var activity entities.LeadActivity
	if err := c.Bind(&activity); err != nil {
		return err
	}
	activity.LeadID = id
	activity.CreatedBy = author(c)

	if err := s.svc.CRM.AddLeadActivity(c.Request().Context(), &activity); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, activity)
}

func (s *Server) SendCampaignHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := s.svc.CRM.SendCampaign(c.Request().Context(), id, auth.UserID(c)); err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, map[string]any{
		"message":    "Campaign queued for sending",
		"campaignId": id,
	})
}
