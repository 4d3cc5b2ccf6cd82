package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ezbooks/ezbooks/gen/ent"
	"github.com/ezbooks/ezbooks/gen/ent/job"
	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/utils"
)

// CreateJobRequest wraps parameters for creating a job.
type CreateJobRequest struct {
	UserID     uuid.UUID
	Name       string
	ClientName *string
	Address    *string
}

type JobRepository interface {
	ListJobs(ctx context.Context, userID uuid.UUID, status string) ([]*entity.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	CreateJob(ctx context.Context, req *CreateJobRequest) (*entity.Job, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Job, error)
}

type jobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepository{
		client: client,
		logger: logger,
	}
}

func (r *jobRepository) ListJobs(ctx context.Context, userID uuid.UUID, status string) ([]*entity.Job, error) {
	q := r.client.Job.Query().Where(job.UserID(userID))
	if status != "" {
		q = q.Where(job.Status(status))
	}
	jobs, err := q.Order(job.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list jobs", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.Job, len(jobs))
	for i, j := range jobs {
		result[i] = utils.ToJob(j)
	}
	return result, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	j, err := r.client.Job.Query().Where(job.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToJob(j), nil
}

func (r *jobRepository) CreateJob(ctx context.Context, req *CreateJobRequest) (*entity.Job, error) {
	j, err := r.client.Job.Create().
		SetUserID(req.UserID).
		SetName(req.Name).
		SetNillableClientName(req.ClientName).
		SetNillableAddress(req.Address).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create job", "user_id", req.UserID, "name", req.Name, "error", err)
		return nil, err
	}
	return utils.ToJob(j), nil
}

func (r *jobRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Job, error) {
	j, err := r.client.Job.UpdateOneID(id).SetStatus(status).Save(ctx)
	if err != nil {
		r.logger.Error("failed to update job status", "job_id", id, "status", status, "error", err)
		return nil, err
	}
	return utils.ToJob(j), nil
}
