package orchestrator

import (
	"context"

	"github.com/fistbump/fistbump/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock for GitRepository - implements all methods of the gateway interface
type mockGitRepository struct{ mock.Mock }

func (m *mockGitRepository) LatestTag(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *mockGitRepository) TagsAtHead(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}
func (m *mockGitRepository) IsClean(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
func (m *mockGitRepository) IsTracked(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}
func (m *mockGitRepository) StageFile(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
func (m *mockGitRepository) Commit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
func (m *mockGitRepository) CreateTag(ctx context.Context, tag string) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}
func (m *mockGitRepository) PushTag(ctx context.Context, tag string) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

// Mock for PromptService
type mockPromptService struct{ mock.Mock }

func (m *mockPromptService) Confirm(ctx context.Context, message string) (bool, error) {
	args := m.Called(ctx, message)
	return args.Bool(0), args.Error(1)
}

// Mock for StateRepository
type mockStateRepository struct{ mock.Mock }

func (m *mockStateRepository) Save(ctx context.Context, record *domain.RunRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *mockStateRepository) Load(ctx context.Context, sessionID string) (*domain.RunRecord, error) {
	args := m.Called(ctx, sessionID)
	if v := args.Get(0); v != nil {
		return v.(*domain.RunRecord), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStateRepository) LoadLatest(ctx context.Context) (*domain.RunRecord, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.RunRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

// Mock for GithubRepository
type mockGithubRepository struct{ mock.Mock }

func (m *mockGithubRepository) CreateRelease(ctx context.Context, tag, name, notes string) (string, error) {
	args := m.Called(ctx, tag, name, notes)
	return args.String(0), args.Error(1)
}
