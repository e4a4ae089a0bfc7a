package services

import (
	"context"
	"strings"

	"diskusi-bisnis/models"
	"diskusi-bisnis/repositories"
)

type UserService interface {
	GetUsers(ctx context.Context, params models.UserListParams) ([]models.UserSummary, error)
	GetUser(ctx context.Context, id uint) (*models.UserSummary, error)
	UpdateProfile(ctx context.Context, actor models.Actor, id uint, req models.UpdateProfileRequest) (*models.User, error)
	GetUserQuestions(ctx context.Context, id uint, params models.QuestionListParams) (*models.QuestionPage, error)
	GetUserAnswers(ctx context.Context, id uint) ([]models.AnswerWithQuestion, error)
}

type userService struct {
	users     repositories.UserRepository
	answers   repositories.AnswerRepository
	questions QuestionService
}

func NewUserService(users repositories.UserRepository, answers repositories.AnswerRepository, questions QuestionService) UserService {
	return &userService{users: users, answers: answers, questions: questions}
}

func (s *userService) GetUsers(ctx context.Context, params models.UserListParams) ([]models.UserSummary, error) {
	users, err := s.users.List(ctx, params)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.UserSummary{}
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*models.UserSummary, error) {
	return s.users.GetSummary(ctx, id)
}

// UpdateProfile lets users edit their own display name, bio and avatar.
// Admins get no override here.
func (s *userService) UpdateProfile(ctx context.Context, actor models.Actor, id uint, req models.UpdateProfileRequest) (*models.User, error) {
	if actor.ID != id {
		return nil, models.NewForbiddenError("You can only update your own profile")
	}

	fields := map[string]interface{}{}
	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" {
			return nil, models.NewValidationError("Display name cannot be empty")
		}
		fields["display_name"] = name
	}
	if req.Bio != nil {
		fields["bio"] = strings.TrimSpace(*req.Bio)
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = strings.TrimSpace(*req.AvatarURL)
	}

	if len(fields) > 0 {
		if err := s.users.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.users.GetByID(ctx, id)
}

func (s *userService) GetUserQuestions(ctx context.Context, id uint, params models.QuestionListParams) (*models.QuestionPage, error) {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return nil, err
	}
	params.AuthorID = id
	return s.questions.GetQuestions(ctx, params)
}

func (s *userService) GetUserAnswers(ctx context.Context, id uint) ([]models.AnswerWithQuestion, error) {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return nil, err
	}
	answers, err := s.answers.ListByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	if answers == nil {
		answers = []models.AnswerWithQuestion{}
	}
	return answers, nil
}
