package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/deppfellow/travelog/internal/errs"
	"github.com/deppfellow/travelog/internal/lib/job"
	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/repository"
	"github.com/deppfellow/travelog/internal/server"
	"github.com/hibiken/asynq"
)

type UserService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewUserService(s *server.Server, repos *repository.Repositories) *UserService {
	return &UserService{server: s, repos: repos}
}

func (s *UserService) List(ctx context.Context) ([]model.UserView, error) {
	g, err := loadGraph(ctx, s.repos)
	if err != nil {
		return nil, readFailure(err)
	}
	if len(g.allUsers) == 0 {
		return nil, emptyCollection("users")
	}

	views := make([]model.UserView, 0, len(g.allUsers))
	for i := range g.allUsers {
		views = append(views, g.userView(&g.allUsers[i]))
	}
	return views, nil
}

// Find resolves ident as an id when it is an integer and as a username
// otherwise.
func (s *UserService) Find(ctx context.Context, ident string) (*model.UserView, error) {
	var (
		user *model.User
		err  error
	)
	if id, convErr := strconv.Atoi(ident); convErr == nil {
		user, err = s.repos.Users.GetByID(ctx, id)
	} else {
		user, err = s.repos.Users.GetByUsername(ctx, ident)
	}
	if err != nil {
		return nil, readFailure(err)
	}

	view, err := s.view(ctx, user)
	if err != nil {
		return nil, readFailure(err)
	}
	return view, nil
}

func (s *UserService) GetByID(ctx context.Context, id int) (*model.UserView, error) {
	user, err := s.repos.Users.GetByID(ctx, id)
	if err != nil {
		return nil, readFailure(err)
	}

	view, err := s.view(ctx, user)
	if err != nil {
		return nil, readFailure(err)
	}
	return view, nil
}

func (s *UserService) view(ctx context.Context, user *model.User) (*model.UserView, error) {
	g, err := loadUserTree(ctx, s.repos, user)
	if err != nil {
		return nil, err
	}
	view := g.userView(user)
	return &view, nil
}

// checkUnique reports email or username collisions with rows other than u.
func (s *UserService) checkUnique(ctx context.Context, u *model.User) error {
	var v model.ValidationErrors

	if other, err := s.repos.Users.GetByEmail(ctx, u.Email); err == nil && other.ID != u.ID {
		v.Add("email", fmt.Sprintf("%s is already registered.", u.Email))
	} else if err != nil && !errs.IsNotFound(err) {
		return err
	}

	if other, err := s.repos.Users.GetByUsername(ctx, u.Username); err == nil && other.ID != u.ID {
		v.Add("username", fmt.Sprintf("%s is already taken.", u.Username))
	} else if err != nil && !errs.IsNotFound(err) {
		return err
	}

	return invalid(v.Err())
}

// Create validates and stores a new user.
func (s *UserService) Create(ctx context.Context, email, username string, travelStyle *string) (*model.UserView, error) {
	user, err := model.NewUser(email, username, travelStyle)
	if err != nil {
		return nil, invalid(err)
	}

	if err := s.checkUnique(ctx, user); err != nil {
		return nil, err
	}

	created, err := s.repos.Users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, created)
}

// Update applies attrs to the user; unknown attributes are rejected.
func (s *UserService) Update(ctx context.Context, id int, attrs map[string]any) (*model.UserView, error) {
	user, err := s.repos.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := user.Apply(attrs); err != nil {
		return nil, invalid(err)
	}

	if err := s.checkUnique(ctx, user); err != nil {
		return nil, err
	}

	updated, err := s.repos.Users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, updated)
}

// Delete removes the user together with their cities and locations.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.repos.Users.Delete(ctx, id)
}

// LoginOrRegister returns the user owning email, registering one named
// after the local part of the address when none exists. The bool reports
// whether a row was inserted.
func (s *UserService) LoginOrRegister(ctx context.Context, email string) (*model.UserView, bool, error) {
	if err := model.ValidateEmail(email); err != nil {
		return nil, false, invalid(err)
	}

	existing, err := s.repos.Users.GetByEmail(ctx, email)
	if err == nil {
		view, err := s.view(ctx, existing)
		return view, false, err
	}
	if !errs.IsNotFound(err) {
		return nil, false, err
	}

	username := model.UsernameFromEmail(email)
	view, err := s.Create(ctx, email, username, nil)
	if err != nil {
		return nil, false, err
	}

	s.enqueueWelcome(ctx, email, username)

	return view, true, nil
}

// enqueueWelcome schedules the welcome email. Failures are logged only:
// registration already succeeded.
func (s *UserService) enqueueWelcome(ctx context.Context, email, username string) {
	if s.server.Job == nil || !s.server.Config.Integration.EmailEnabled() {
		return
	}

	task, err := job.NewWelcomeEmailTask(email, username)
	if err != nil {
		s.server.Logger.Error().Err(err).Str("to", email).Msg("failed to build welcome email task")
		return
	}

	info, err := s.server.Job.Client.EnqueueContext(ctx, task, asynq.Queue(job.QueueDefault))
	if err != nil {
		s.server.Logger.Error().Err(err).Str("to", email).Msg("failed to enqueue welcome email task")
		return
	}

	s.server.Logger.Info().
		Str("task_id", info.ID).
		Str("to", email).
		Msg("welcome email task enqueued")
}
