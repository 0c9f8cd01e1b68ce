package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"job-board/internal/domain/job"
)

const jobListGenerationKey = "jobs:list:generation"

// JobListCache stores public listings. Every job write bumps the generation
// so listings cached before the write are never read again.
type JobListCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Generation(ctx context.Context, key string) (int64, error)
	BumpGeneration(ctx context.Context, key string) (int64, error)
	DeleteByPattern(ctx context.Context, pattern string) error
}

type jobListCacheKeyInput struct {
	Location        string   `json:"location"`
	JobType         string   `json:"job_type"`
	ExperienceLevel string   `json:"experience_level"`
	Skills          []string `json:"skills"`
}

// JobListCacheKey folds case only where matching is case-insensitive, so two
// filters share a key exactly when they select the same jobs.
func JobListCacheKey(generation int64, f job.ListFilter) string {
	skills := make([]string, 0, len(f.Skills))
	for _, s := range f.Skills {
		skills = append(skills, strings.ToLower(s))
	}

	in := jobListCacheKeyInput{
		Location:        strings.ToLower(f.Location),
		JobType:         f.JobType,
		ExperienceLevel: f.ExperienceLevel,
		Skills:          skills,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return fmt.Sprintf("jobs:list:%d:%s", generation, hex.EncodeToString(sum[:]))
}

func jobListGenerationPattern(generation int64) string {
	return fmt.Sprintf("jobs:list:%d:*", generation)
}
