package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fistbump/fistbump/internal/config"
	"github.com/fistbump/fistbump/internal/domain"
	"github.com/fistbump/fistbump/internal/repository"
	"github.com/fistbump/fistbump/internal/service"
	"github.com/fistbump/fistbump/internal/usecase"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// BumpConfig contains the per-run settings derived from the CLI flags.
type BumpConfig struct {
	Request domain.BumpRequest
	Force   bool
	DryRun  bool
	Check   bool
	Push    bool
	Release bool
}

// BumpOrchestrator drives a single bump run: resolve the current version,
// compute the new one, check preconditions, collect file updates, confirm,
// apply, commit, tag and report. All steps run strictly sequentially; the
// first failing operation aborts the run with no cleanup of prior steps.
type BumpOrchestrator struct {
	gitRepo   repository.GitRepository
	fsRepo    repository.FileSystemRepository
	ghRepo    repository.GithubRepository
	stateRepo repository.StateRepository
	promptSvc service.PromptService
	cfg       *config.Config
	logger    *zap.Logger
	out       io.Writer
}

// NewBumpOrchestrator creates a new bump orchestrator. ghRepo may be nil when
// no GitHub token is configured.
func NewBumpOrchestrator(
	gitRepo repository.GitRepository,
	fsRepo repository.FileSystemRepository,
	ghRepo repository.GithubRepository,
	stateRepo repository.StateRepository,
	promptSvc service.PromptService,
	cfg *config.Config,
	logger *zap.Logger,
	out io.Writer,
) *BumpOrchestrator {
	return &BumpOrchestrator{
		gitRepo:   gitRepo,
		fsRepo:    fsRepo,
		ghRepo:    ghRepo,
		stateRepo: stateRepo,
		promptSvc: promptSvc,
		cfg:       cfg,
		logger:    logger,
		out:       out,
	}
}

// Execute runs the bump workflow.
func (o *BumpOrchestrator) Execute(ctx context.Context, cfg BumpConfig) error {
	if cfg.Check {
		return o.runCheck(ctx)
	}
	current, err := o.resolveVersion(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoTagFound) {
			o.printf("No tags found\n")
			return nil
		}
		return err
	}
	o.printf("Current version: %s\n", current.TagName())
	if !cfg.Request.Requested() {
		o.printf("No version bump requested, consider --major, --minor or --patch\n")
		return nil
	}
	newVersion, err := o.computeVersion(ctx, current, cfg.Request)
	if err != nil {
		return err
	}
	// Explicit prerelease bumps and set-version values carrying a prerelease
	// label both follow the pre-release policy downstream.
	prerelease := cfg.Request.Prerelease || newVersion.IsPrerelease()
	o.printf("New version: %s\n", newVersion.String())
	if newVersion.TagName() != newVersion.String() {
		o.printf("New tag: %s\n", newVersion.TagName())
	}
	if proceed, err := o.checkPreconditions(ctx, cfg, prerelease); err != nil || !proceed {
		return err
	}
	updates, err := o.collectUpdates(ctx, newVersion.String())
	if err != nil {
		return err
	}
	confirmed, err := o.confirm(ctx, updates, prerelease)
	if err != nil {
		return err
	}
	if !confirmed {
		o.printf("Aborted by user request\n")
		return nil
	}
	execLog := NewExecutionLog()
	if err := o.apply(ctx, cfg, updates, newVersion, prerelease, execLog); err != nil {
		return err
	}
	o.printf("All done!\n")
	o.printf("Commands ran:\n")
	for _, command := range execLog.Commands() {
		o.printf("%s\n", command)
	}
	o.saveRunRecord(ctx, current, newVersion, prerelease, cfg, execLog)
	return nil
}

// runCheck verifies the release gate and maps a failed gate to the dedicated
// check-failure error so the process exits with a distinct code.
func (o *BumpOrchestrator) runCheck(ctx context.Context) error {
	uc := &usecase.CheckReleaseUseCase{GitRepo: o.gitRepo}
	ok, diagnostic, err := uc.Execute(ctx)
	if err != nil {
		return err
	}
	if !ok {
		o.printf("%s\n", diagnostic)
		return domain.ErrCheckFailed
	}
	o.printf("Working tree is clean and the current commit carries a release tag\n")
	return nil
}

func (o *BumpOrchestrator) resolveVersion(ctx context.Context) (*domain.Version, error) {
	uc := &usecase.ResolveVersionUseCase{GitRepo: o.gitRepo}
	return uc.Execute(ctx)
}

func (o *BumpOrchestrator) computeVersion(
	ctx context.Context,
	current *domain.Version,
	req domain.BumpRequest,
) (*domain.Version, error) {
	if req.SetVersion != "" {
		if err := ValidateVersion(req.SetVersion); err != nil {
			return nil, err
		}
	}
	uc := &usecase.ComputeBumpUseCase{PrereleaseLabel: o.cfg.PrereleaseLabel}
	return uc.Execute(ctx, current, req)
}

// checkPreconditions gates the run on working-tree cleanliness and on the
// current commit not already carrying a version tag. Returning (false, nil)
// means the run stops with a diagnostic but a clean exit.
func (o *BumpOrchestrator) checkPreconditions(ctx context.Context, cfg BumpConfig, prerelease bool) (bool, error) {
	clean, err := o.gitRepo.IsClean(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check working tree: %w", err)
	}
	if !clean && !cfg.Force {
		if !prerelease {
			o.printf("Working directory is not clean, commit changes before proceeding or use the --force\n")
			return false, nil
		}
		// Pre-release bumps are allowed on a dirty tree since nothing gets
		// committed or tagged.
		o.printf("Warning: working directory is not clean\n")
	}
	tags, err := o.gitRepo.TagsAtHead(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list tags at HEAD: %w", err)
	}
	for _, tag := range tags {
		if _, err := domain.ParseTag(tag); err != nil {
			continue
		}
		if !cfg.Force {
			o.printf("Current commit is already tagged (%s), use the --force to bump anyway\n", tag)
			return false, nil
		}
	}
	return true, nil
}

func (o *BumpOrchestrator) collectUpdates(ctx context.Context, newVersion string) ([]domain.FileUpdate, error) {
	uc := &usecase.CollectUpdatesUseCase{
		FsRepo:          o.fsRepo,
		ManifestFile:    o.cfg.ManifestFile,
		VersionFileName: o.cfg.VersionFileName,
		SkipDirs:        []string{o.cfg.StateDir},
	}
	return uc.Execute(ctx, newVersion)
}

// confirm presents every pending change and asks for the exact token "y".
func (o *BumpOrchestrator) confirm(ctx context.Context, updates []domain.FileUpdate, prerelease bool) (bool, error) {
	for _, update := range updates {
		o.printf("######### File: %s\n", update.Path)
		o.printf("%s\n\n", update.Content)
	}
	message := "Proceed with changes and tagging? [y/N] "
	if prerelease {
		message = "Tagging won't be done because of the pre-release, proceed with changes? [y/N] "
	}
	return o.promptSvc.Confirm(ctx, message)
}

// apply writes the updates, stages tracked files, commits and tags. Writes
// happen before staging; a failure mid-way leaves earlier writes in place.
func (o *BumpOrchestrator) apply(
	ctx context.Context,
	cfg BumpConfig,
	updates []domain.FileUpdate,
	newVersion *domain.Version,
	prerelease bool,
	execLog *ExecutionLog,
) error {
	commitNeeded := false
	for _, update := range updates {
		o.printf("Updating %s\n", update.Path)
		if cfg.DryRun {
			continue
		}
		if err := afero.WriteFile(o.fsRepo, update.Path, []byte(update.Content), FilePermissionsReadWrite); err != nil {
			return fmt.Errorf("failed to write %s: %w", update.Path, err)
		}
		if prerelease {
			continue
		}
		tracked, err := o.gitRepo.IsTracked(ctx, update.Path)
		if err != nil {
			return fmt.Errorf("failed to check whether %s is tracked: %w", update.Path, err)
		}
		if !tracked {
			o.printf("File %s is not tracked by git, skipping add\n", update.Path)
			continue
		}
		o.printf("git add %s\n", update.Path)
		if err := o.gitRepo.StageFile(ctx, update.Path); err != nil {
			return err
		}
		execLog.Record("git add " + update.Path)
		commitNeeded = true
	}
	if commitNeeded {
		message := "Bump version to " + newVersion.String()
		if err := o.gitRepo.Commit(ctx, message); err != nil {
			return err
		}
		execLog.Record(fmt.Sprintf("git commit -m %q", message))
	}
	if prerelease {
		o.printf("Pre-release version, not tagging\n")
		return nil
	}
	tag := newVersion.TagName()
	if cfg.DryRun {
		o.printf("Would run: git tag %s\n", tag)
		return nil
	}
	if err := o.gitRepo.CreateTag(ctx, tag); err != nil {
		return err
	}
	execLog.Record("git tag " + tag)
	if !cfg.Push {
		return nil
	}
	if err := o.gitRepo.PushTag(ctx, tag); err != nil {
		return err
	}
	execLog.Record("git push origin " + tag)
	if cfg.Release {
		if err := o.createRelease(ctx, newVersion); err != nil {
			return err
		}
	}
	return nil
}

// createRelease creates a GitHub release for the pushed tag. The API call is
// the only operation in the run that gets retried, since it crosses the
// network.
func (o *BumpOrchestrator) createRelease(ctx context.Context, newVersion *domain.Version) error {
	if o.ghRepo == nil {
		return fmt.Errorf("release creation requested but no GitHub token is configured")
	}
	tag := newVersion.TagName()
	notes := "Bump version to " + newVersion.String()
	var url string
	err := retry.Do(
		ctx,
		retry.WithMaxRetries(DefaultRetryCount, retry.NewExponential(DefaultRetryDelay)),
		func(ctx context.Context) error {
			var createErr error
			url, createErr = o.ghRepo.CreateRelease(ctx, tag, tag, notes)
			if createErr != nil {
				return retry.RetryableError(createErr)
			}
			return nil
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create GitHub release: %w", err)
	}
	o.printf("Created GitHub release %s: %s\n", tag, url)
	return nil
}

// saveRunRecord persists the run outcome, best effort.
func (o *BumpOrchestrator) saveRunRecord(
	ctx context.Context,
	current, newVersion *domain.Version,
	prerelease bool,
	cfg BumpConfig,
	execLog *ExecutionLog,
) {
	record := &domain.RunRecord{
		SessionID:       uuid.New().String(),
		PreviousVersion: current.String(),
		NewVersion:      newVersion.String(),
		Prerelease:      prerelease,
		DryRun:          cfg.DryRun,
		Commands:        execLog.Commands(),
		FinishedAt:      time.Now(),
	}
	if !prerelease && !cfg.DryRun {
		record.Tag = newVersion.TagName()
	}
	if err := o.stateRepo.Save(ctx, record); err != nil {
		o.logger.Warn("failed to save run record", zap.Error(err))
		return
	}
	o.logger.Debug("run record saved", zap.String("session_id", record.SessionID))
}

func (o *BumpOrchestrator) printf(format string, args ...any) {
	fmt.Fprintf(o.out, format, args...)
}
