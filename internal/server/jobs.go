package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ezbooks/ezbooks/constants"
	ezbookspb "github.com/ezbooks/ezbooks/gen/proto/ezbooks/v1"
	"github.com/ezbooks/ezbooks/internal/repository"
	"github.com/ezbooks/ezbooks/internal/utils"
)

type JobsService struct {
	ezbookspb.UnimplementedJobsServiceServer
	jobRepo repository.JobRepository
	logger  *slog.Logger
}

func NewJobsService(jobRepo repository.JobRepository, logger *slog.Logger) *JobsService {
	return &JobsService{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

func validJobStatus(s string) bool {
	switch constants.JobStatus(s) {
	case constants.JobStatusActive, constants.JobStatusCompleted, constants.JobStatusArchived:
		return true
	}
	return false
}

func (s *JobsService) ListJobs(ctx context.Context, req *ezbookspb.ListJobsRequest) (*ezbookspb.ListJobsResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}
	if st := req.GetStatus(); st != "" && !validJobStatus(st) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
	}

	jobs, err := s.jobRepo.ListJobs(ctx, userID, req.GetStatus())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}

	out := make([]*ezbookspb.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, utils.ToPBJob(j))
	}
	return &ezbookspb.ListJobsResponse{Jobs: out}, nil
}

func (s *JobsService) CreateJob(ctx context.Context, req *ezbookspb.CreateJobRequest) (*ezbookspb.CreateJobResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	j, err := s.jobRepo.CreateJob(ctx, &repository.CreateJobRequest{
		UserID:     userID,
		Name:       name,
		ClientName: optionalString(req.GetClientName()),
		Address:    optionalString(req.GetAddress()),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create job: %v", err)
	}
	s.logger.Info("job created", "user_id", userID, "job_id", j.ID, "name", name)
	return &ezbookspb.CreateJobResponse{Job: utils.ToPBJob(j)}, nil
}

func (s *JobsService) SetJobStatus(ctx context.Context, req *ezbookspb.SetJobStatusRequest) (*ezbookspb.SetJobStatusResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if !validJobStatus(req.GetStatus()) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", req.GetStatus())
	}
	existing, err := s.jobRepo.GetByID(ctx, id)
	if err != nil || existing.UserID != userID {
		return nil, status.Error(codes.NotFound, "job not found")
	}

	j, err := s.jobRepo.SetStatus(ctx, id, req.GetStatus())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "set job status: %v", err)
	}
	return &ezbookspb.SetJobStatusResponse{Job: utils.ToPBJob(j)}, nil
}
