package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"tours/internal/entities"
	"tours/internal/repository"
)

type CustomersRepo interface {
	List(ctx context.Context, f repository.CustomerFilter) ([]entities.Customer, error)
	Get(ctx context.Context, id int64) (*entities.Customer, error)
	Create(ctx context.Context, c *entities.Customer) error
	Update(ctx context.Context, c *entities.Customer) error
	Delete(ctx context.Context, id int64) error
	Interactions(ctx context.Context, customerID int64) ([]entities.CustomerInteraction, error)
}

type LeadsRepo interface {
	List(ctx context.Context, f repository.LeadFilter) ([]entities.Lead, error)
	Get(ctx context.Context, id int64) (*entities.Lead, error)
	Create(ctx context.Context, l *entities.Lead) error
	Update(ctx context.Context, l *entities.Lead) error
	Delete(ctx context.Context, id int64) error
	Activities(ctx context.Context, leadID int64) ([]entities.LeadActivity, error)
	AddActivity(ctx context.Context, a *entities.LeadActivity) error
}

type OpportunitiesRepo interface {
	List(ctx context.Context, f repository.OpportunityFilter) ([]entities.Opportunity, error)
	Get(ctx context.Context, id int64) (*entities.Opportunity, error)
	Create(ctx context.Context, o *entities.Opportunity) error
	Update(ctx context.Context, o *entities.Opportunity) error
	Delete(ctx context.Context, id int64) error
}

type TasksRepo interface {
	List(ctx context.Context, f repository.TaskFilter) ([]entities.Task, error)
	Get(ctx context.Context, id int64) (*entities.Task, error)
	Create(ctx context.Context, t *entities.Task) error
	Update(ctx context.Context, t *entities.Task) error
	Delete(ctx context.Context, id int64) error
}

type EmailTemplatesRepo interface {
	List(ctx context.Context, f repository.EmailTemplateFilter) ([]entities.EmailTemplate, error)
	Get(ctx context.Context, id int64) (*entities.EmailTemplate, error)
	Create(ctx context.Context, t *entities.EmailTemplate) error
	Update(ctx context.Context, t *entities.EmailTemplate) error
	Delete(ctx context.Context, id int64) error
}

//go:generate mockgen -destination=mocks/mock_email_campaigns_repo.go -package=mocks tours/internal/application/services EmailCampaignsRepo
type EmailCampaignsRepo interface {
	List(ctx context.Context, f repository.EmailCampaignFilter) ([]entities.EmailCampaign, error)
	Get(ctx context.Context, id int64) (*entities.EmailCampaign, error)
	Create(ctx context.Context, c *entities.EmailCampaign) error
	Update(ctx context.Context, c *entities.EmailCampaign) error
	Delete(ctx context.Context, id int64) error
}

type DashboardRepo interface {
	Stats(ctx context.Context) (*entities.DashboardStats, error)
}

//go:generate mockgen -destination=mocks/mock_command_bus.go -package=mocks tours/internal/application/services CommandBus
type CommandBus interface {
	Send(ctx context.Context, cmd any) error
}

type CRMRepositories struct {
	Customers      CustomersRepo
	Leads          LeadsRepo
	Opportunities  OpportunitiesRepo
	Tasks          TasksRepo
	EmailTemplates EmailTemplatesRepo
	EmailCampaigns EmailCampaignsRepo
	Dashboard      DashboardRepo
}

// CRMService is the admin back office: customers, the sales pipeline, tasks and
// email marketing.
type CRMService struct {
	repos      CRMRepositories
	commandBus CommandBus
}

func NewCRMService(repos CRMRepositories, commandBus CommandBus) *CRMService {
	if commandBus == nil {
		panic("missing commandBus")
	}

	return &CRMService{
		repos:      repos,
		commandBus: commandBus,
	}
}

var (
	customerTypes    = []any{"individual", "corporate", "vip"}
	customerStatuses = []any{"active", "inactive", "blocked"}
	leadStatuses     = []any{"new", "contacted", "qualified", "proposal", "won", "lost"}
	activityTypes    = []any{"call", "email", "meeting", "note", "task"}
	activityOutcomes = []any{"", "positive", "negative", "neutral"}
	stages           = []any{"prospecting", "qualification", "proposal", "negotiation", "closed_won", "closed_lost"}
	taskTypes        = []any{"general", "follow_up", "call", "email", "meeting"}
	taskStatuses     = []any{"pending", "in_progress", "completed", "cancelled"}
	priorities       = []any{entities.PriorityLow, entities.PriorityNormal, entities.PriorityHigh, entities.PriorityUrgent}
)

func defaultString(s *string, def string) {
	*s = strings.TrimSpace(*s)
	if *s == "" {
		*s = def
	}
}

func nonNegativeDecimal(value any) error {
	d, _ := value.(decimal.Decimal)
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

func nonNegativeNullDecimal(value any) error {
	d, _ := value.(decimal.NullDecimal)
	if d.Valid {
		return nonNegativeDecimal(d.Decimal)
	}
	return nil
}

func (s *CRMService) Dashboard(ctx context.Context) (*entities.DashboardStats, error) {
	return s.repos.Dashboard.Stats(ctx)
}

func (s *CRMService) ListCustomers(ctx context.Context, f repository.CustomerFilter) ([]entities.Customer, error) {
	return s.repos.Customers.List(ctx, f)
}

func (s *CRMService) GetCustomer(ctx context.Context, id int64) (*entities.Customer, error) {
	return s.repos.Customers.Get(ctx, id)
}

func (s *CRMService) CustomerInteractions(ctx context.Context, id int64) ([]entities.CustomerInteraction, error) {
	if _, err := s.repos.Customers.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.repos.Customers.Interactions(ctx, id)
}

func (s *CRMService) CreateCustomer(ctx context.Context, c *entities.Customer) error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	defaultString(&c.CustomerType, "individual")
	defaultString(&c.Status, "active")
	defaultString(&c.Source, "manual")

	if err := validateCustomer(c); err != nil {
		return err
	}
	return s.repos.Customers.Create(ctx, c)
}

func (s *CRMService) UpdateCustomer(ctx context.Context, c *entities.Customer) error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	if err := validateCustomer(c); err != nil {
		return err
	}
	return s.repos.Customers.Update(ctx, c)
}

func (s *CRMService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.repos.Customers.Delete(ctx, id)
}

func validateCustomer(c *entities.Customer) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Email, validation.Required, is.EmailFormat),
		validation.Field(&c.FirstName, validation.Length(0, 255)),
		validation.Field(&c.LastName, validation.Length(0, 255)),
		validation.Field(&c.Phone, validation.Length(0, 50)),
		validation.Field(&c.CustomerType, validation.Required, validation.In(customerTypes...)),
		validation.Field(&c.Status, validation.Required, validation.In(customerStatuses...)),
		validation.Field(&c.Source, validation.Length(0, 50)),
	)
}

func (s *CRMService) ListLeads(ctx context.Context, f repository.LeadFilter) ([]entities.Lead, error) {
	return s.repos.Leads.List(ctx, f)
}

func (s *CRMService) GetLead(ctx context.Context, id int64) (*entities.Lead, error) {
	return s.repos.Leads.Get(ctx, id)
}

func (s *CRMService) CreateLead(ctx context.Context, l *entities.Lead) error {
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))
	defaultString(&l.Status, "new")
	defaultString(&l.Source, "website")
	if l.Priority == "" {
		l.Priority = entities.PriorityNormal
	}

	if err := validateLead(l); err != nil {
		return err
	}
	return s.repos.Leads.Create(ctx, l)
}

func (s *CRMService) UpdateLead(ctx context.Context, l *entities.Lead) error {
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))
	if err := validateLead(l); err != nil {
		return err
	}
	return s.repos.Leads.Update(ctx, l)
}

func (s *CRMService) DeleteLead(ctx context.Context, id int64) error {
	return s.repos.Leads.Delete(ctx, id)
}

func validateLead(l *entities.Lead) error {
	return validation.ValidateStruct(l,
		validation.Field(&l.FirstName, validation.Required, validation.Length(1, 255)),
		validation.Field(&l.Email, validation.Required, is.EmailFormat),
		validation.Field(&l.Phone, validation.Length(0, 50)),
		validation.Field(&l.Status, validation.Required, validation.In(leadStatuses...)),
		validation.Field(&l.Priority, validation.Required, validation.In(priorities...)),
		validation.Field(&l.Source, validation.Length(0, 50)),
		validation.Field(&l.Budget, validation.By(nonNegativeNullDecimal)),
	)
}

func (s *CRMService) LeadActivities(ctx context.Context, leadID int64) ([]entities.LeadActivity, error) {
	if _, err := s.repos.Leads.Get(ctx, leadID); err != nil {
		return nil, err
	}
	return s.repos.Leads.Activities(ctx, leadID)
}

func (s *CRMService) AddLeadActivity(ctx context.Context, a *entities.LeadActivity) error {
	err := validation.ValidateStruct(a,
		validation.Field(&a.ActivityType, validation.Required, validation.In(activityTypes...)),
		validation.Field(&a.Subject, validation.Required, validation.Length(1, 255)),
		validation.Field(&a.Outcome, validation.In(activityOutcomes...)),
	)
	if err != nil {
		return err
	}

	if _, err := s.repos.Leads.Get(ctx, a.LeadID); err != nil {
		return err
	}
	return s.repos.Leads.AddActivity(ctx, a)
}

func (s *CRMService) ListOpportunities(ctx context.Context, f repository.OpportunityFilter) ([]entities.Opportunity, error) {
	return s.repos.Opportunities.List(ctx, f)
}

func (s *CRMService) GetOpportunity(ctx context.Context, id int64) (*entities.Opportunity, error) {
	return s.repos.Opportunities.Get(ctx, id)
}

func (s *CRMService) CreateOpportunity(ctx context.Context, o *entities.Opportunity) error {
	defaultString(&o.Stage, "prospecting")
	if err := validateOpportunity(o); err != nil {
		return err
	}
	return s.repos.Opportunities.Create(ctx, o)
}

func (s *CRMService) UpdateOpportunity(ctx context.Context, o *entities.Opportunity) error {
	if err := validateOpportunity(o); err != nil {
		return err
	}
	return s.repos.Opportunities.Update(ctx, o)
}

func (s *CRMService) DeleteOpportunity(ctx context.Context, id int64) error {
	return s.repos.Opportunities.Delete(ctx, id)
}

func validateOpportunity(o *entities.Opportunity) error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&o.Stage, validation.Required, validation.In(stages...)),
		validation.Field(&o.Probability, validation.Min(0), validation.Max(100)),
		validation.Field(&o.Value, validation.By(nonNegativeDecimal)),
	)
}

func (s *CRMService) ListTasks(ctx context.Context, f repository.TaskFilter) ([]entities.Task, error) {
	return s.repos.Tasks.List(ctx, f)
}

func (s *CRMService) GetTask(ctx context.Context, id int64) (*entities.Task, error) {
	return s.repos.Tasks.Get(ctx, id)
}

func (s *CRMService) CreateTask(ctx context.Context, t *entities.Task) error {
	defaultString(&t.TaskType, "follow_up")
	defaultString(&t.Status, "pending")
	if t.Priority == "" {
		t.Priority = entities.PriorityNormal
	}

	if err := validateTask(t); err != nil {
		return err
	}
	stampCompletion(t)

	return s.repos.Tasks.Create(ctx, t)
}

func (s *CRMService) UpdateTask(ctx context.Context, t *entities.Task) error {
	if err := validateTask(t); err != nil {
		return err
	}
	stampCompletion(t)

	return s.repos.Tasks.Update(ctx, t)
}

func (s *CRMService) DeleteTask(ctx context.Context, id int64) error {
	return s.repos.Tasks.Delete(ctx, id)
}

// stampCompletion keeps completedAt in step with the status.
func stampCompletion(t *entities.Task) {
	if t.Status != "completed" {
		t.CompletedAt = nil
		return
	}
	if t.CompletedAt == nil {
		now := time.Now().UTC()
		t.CompletedAt = &now
	}
}

func validateTask(t *entities.Task) error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&t.TaskType, validation.Required, validation.In(taskTypes...)),
		validation.Field(&t.Status, validation.Required, validation.In(taskStatuses...)),
		validation.Field(&t.Priority, validation.Required, validation.In(priorities...)),
	)
}

func (s *CRMService) ListEmailTemplates(ctx context.Context, f repository.EmailTemplateFilter) ([]entities.EmailTemplate, error) {
	return s.repos.EmailTemplates.List(ctx, f)
}

func (s *CRMService) GetEmailTemplate(ctx context.Context, id int64) (*entities.EmailTemplate, error) {
	return s.repos.EmailTemplates.Get(ctx, id)
}

func (s *CRMService) CreateEmailTemplate(ctx context.Context, t *entities.EmailTemplate) error {
	defaultString(&t.Category, "general")
	if err := validateEmailTemplate(t); err != nil {
		return err
	}
	return s.repos.EmailTemplates.Create(ctx, t)
}

func (s *CRMService) UpdateEmailTemplate(ctx context.Context, t *entities.EmailTemplate) error {
	if err := validateEmailTemplate(t); err != nil {
		return err
	}
	return s.repos.EmailTemplates.Update(ctx, t)
}

func (s *CRMService) DeleteEmailTemplate(ctx context.Context, id int64) error {
	return s.repos.EmailTemplates.Delete(ctx, id)
}

func validateEmailTemplate(t *entities.EmailTemplate) error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&t.Subject, validation.Required, validation.Length(1, 255)),
		validation.Field(&t.Content, validation.Required),
		validation.Field(&t.Category, validation.Length(0, 50)),
	)
}

func (s *CRMService) ListEmailCampaigns(ctx context.Context, f repository.EmailCampaignFilter) ([]entities.EmailCampaign, error) {
	return s.repos.EmailCampaigns.List(ctx, f)
}

func (s *CRMService) GetEmailCampaign(ctx context.Context, id int64) (*entities.EmailCampaign, error) {
	return s.repos.EmailCampaigns.Get(ctx, id)
}

func (s *CRMService) CreateEmailCampaign(ctx context.Context, c *entities.EmailCampaign) error {
	c.Status = entities.CampaignDraft
	if c.ScheduledAt != nil {
		c.Status = entities.CampaignScheduled
	}

	if err := s.prepareCampaign(ctx, c); err != nil {
		return err
	}
	return s.repos.EmailCampaigns.Create(ctx, c)
}

// UpdateEmailCampaign edits a campaign that has not started sending yet.
func (s *CRMService) UpdateEmailCampaign(ctx context.Context, c *entities.EmailCampaign) error {
	current, err := s.repos.EmailCampaigns.Get(ctx, c.ID)
	if err != nil {
		return err
	}
	if !campaignEditable(current.Status) {
		return fmt.Errorf("campaign %d is %s: %w", c.ID, current.Status, entities.ErrConflict)
	}

	c.Status = entities.CampaignDraft
	if c.ScheduledAt != nil {
		c.Status = entities.CampaignScheduled
	}

	if err := s.prepareCampaign(ctx, c); err != nil {
		return err
	}
	return s.repos.EmailCampaigns.Update(ctx, c)
}

func (s *CRMService) DeleteEmailCampaign(ctx context.Context, id int64) error {
	return s.repos.EmailCampaigns.Delete(ctx, id)
}

// prepareCampaign fills subject and content from the referenced template when the
// campaign leaves them empty.
func (s *CRMService) prepareCampaign(ctx context.Context, c *entities.EmailCampaign) error {
	if c.TemplateID != nil && (c.Subject == "" || c.Content == "") {
		tmpl, err := s.repos.EmailTemplates.Get(ctx, *c.TemplateID)
		if err != nil {
			return fmt.Errorf("could not load template %d: %w", *c.TemplateID, err)
		}
		if c.Subject == "" {
			c.Subject = tmpl.Subject
		}
		if c.Content == "" {
			c.Content = tmpl.Content
		}
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.Subject, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.Content, validation.Required),
		validation.Field(&c.TargetAudience, validation.By(validAudience)),
	)
}

func validAudience(value any) error {
	audience, _ := value.(entities.CampaignAudience)
	return validation.ValidateStruct(&audience,
		validation.Field(&audience.CustomerTypes, validation.Each(validation.In(customerTypes...))),
		validation.Field(&audience.Statuses, validation.Each(validation.In(customerStatuses...))),
	)
}

func campaignEditable(status string) bool {
	return status == entities.CampaignDraft || status == entities.CampaignScheduled
}

// SendCampaign queues the campaign for delivery. Rendering and sending happen in the
// command handler.
func (s *CRMService) SendCampaign(ctx context.Context, id int64, requestedBy string) error {
	campaign, err := s.repos.EmailCampaigns.Get(ctx, id)
	if err != nil {
		return err
	}
	if !campaignEditable(campaign.Status) {
		return fmt.Errorf("campaign %d is %s: %w", id, campaign.Status, entities.ErrConflict)
	}

	err = s.commandBus.Send(ctx, &entities.SendEmailCampaign{
		Header:      entities.NewEventHeader(),
		CampaignID:  id,
		RequestedBy: requestedBy,
	})
	if err != nil {
		return fmt.Errorf("could not send SendEmailCampaign command: %w", err)
	}

	return nil
}
