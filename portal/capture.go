package portal

import (
	"context"
	"regexp"

	"github.com/rs/zerolog"
)

// mobilePattern matches a ten digit Indian mobile number.
var mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// ValidateMobile checks a mobile number before it leaves the process.
func ValidateMobile(mobile string) error {
	if !mobilePattern.MatchString(mobile) {
		return &ValidationError{Field: "mobile", Message: "enter a valid 10-digit mobile number"}
	}
	return nil
}

// Capture routes inbound project interest: a signed-in visitor opens a
// real project, an anonymous one becomes a lead.
type Capture struct {
	client  *Client
	session *SessionStore
	log     zerolog.Logger
}

func NewCapture(client *Client, session *SessionStore, log zerolog.Logger) *Capture {
	return &Capture{client: client, session: session, log: log}
}

// ProjectRequest is the popup form: one shape regardless of which path
// it ends up taking.
type ProjectRequest struct {
	Name           string
	Email          string
	Mobile         string
	ProjectTitle   string
	ProjectType    string
	ProjectDetails string
}

// SubmitProjectRequest files the request as a project when a session
// exists and as a lead otherwise. The authenticated path ignores the
// contact fields; the backend already knows who is asking.
func (cp *Capture) SubmitProjectRequest(ctx context.Context, req ProjectRequest) error {
	if cp.session.CurrentUser() != nil {
		result, err := cp.client.CreateProject(ctx, CreateProjectInput{
			Title:       req.ProjectTitle,
			ServiceType: req.ProjectType,
			Description: req.ProjectDetails,
		})
		if err != nil {
			return err
		}
		cp.log.Info().Str("project_id", result.Project.ID).Msg("project request filed")
		return nil
	}
	return cp.createLead(ctx, req)
}

// SubmitExitIntent handles the leaving-visitor prompt. The mobile number
// is validated locally; nothing is sent until it passes.
func (cp *Capture) SubmitExitIntent(ctx context.Context, req ProjectRequest) error {
	if err := ValidateMobile(req.Mobile); err != nil {
		return err
	}
	return cp.createLead(ctx, req)
}

func (cp *Capture) createLead(ctx context.Context, req ProjectRequest) error {
	result, err := cp.client.CreateLead(ctx, CreateLeadInput{
		Name:           req.Name,
		Email:          req.Email,
		Mobile:         req.Mobile,
		Project:        req.ProjectTitle,
		ProjectType:    req.ProjectType,
		ProjectDetails: req.ProjectDetails,
	})
	if err != nil {
		return err
	}
	cp.log.Info().Str("status", result.Status).Msg("lead captured")
	return nil
}

// SubscribeNewsletter passes a footer signup through to the backend.
func (cp *Capture) SubscribeNewsletter(ctx context.Context, email string) error {
	_, err := cp.client.SubscribeNewsletter(ctx, email)
	return err
}
