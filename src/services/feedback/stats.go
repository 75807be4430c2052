package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	DB "feedback-backend/src/database"
	"feedback-backend/src/models"
)

const statsSnapshotTTL = 10 * time.Minute

// NewFeedbackStats returns an empty stats bucket with every histogram key
// present, so the JSON shape is stable even over an empty set.
func NewFeedbackStats() *models.FeedbackStats {
	return &models.FeedbackStats{
		Sentiment: map[string]int{
			models.SentimentPositive: 0,
			models.SentimentNeutral:  0,
			models.SentimentNegative: 0,
		},
		ByQuestionType: map[string]int{
			models.QuestionTypeText:   0,
			models.QuestionTypeVote:   0,
			models.QuestionTypeRating: 0,
		},
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		VoteDistribution:   map[string]int{"true": 0, "false": 0},
		SubmissionsByDate:  map[string]int{},
	}
}

// ReduceStats folds a feedback set into aggregate counts in one linear
// pass: overall sentiment totals, answers per question type, rating and
// vote histograms, submissions per calendar day, and the mean rating
// (0 when no ratings exist).
func ReduceStats(feedbacks []models.Feedback) *models.FeedbackStats {
	stats := NewFeedbackStats()
	stats.TotalSubmissions = len(feedbacks)

	for _, fb := range feedbacks {
		if _, ok := stats.Sentiment[fb.OverallSentiment]; ok {
			stats.Sentiment[fb.OverallSentiment]++
		}

		for _, answer := range fb.Answers {
			if _, ok := stats.ByQuestionType[answer.Type]; ok {
				stats.ByQuestionType[answer.Type]++
			}

			if answer.Type == models.QuestionTypeRating && answer.Rating != nil {
				if r := *answer.Rating; r >= 1 && r <= 5 {
					stats.RatingDistribution[r]++
				}
			}

			if answer.Type == models.QuestionTypeVote && answer.Vote != nil {
				if *answer.Vote {
					stats.VoteDistribution["true"]++
				} else {
					stats.VoteDistribution["false"]++
				}
			}
		}

		if !fb.CreatedAt.IsZero() {
			day := fb.CreatedAt.Format("2006-01-02")
			stats.SubmissionsByDate[day]++
		}
	}

	ratingSum, ratingCount := 0, 0
	for value, count := range stats.RatingDistribution {
		ratingSum += value * count
		ratingCount += count
	}
	if ratingCount > 0 {
		stats.AverageRating = float64(ratingSum) / float64(ratingCount)
	}

	return stats
}

// GetFeedbackStats computes statistics over the feedback set matching the
// filter. A form-only filter is served from the Redis snapshot when one
// exists; anything date-filtered is always computed live.
func GetFeedbackStats(ctx context.Context, filter QueryFilter) (*models.FeedbackStats, error) {
	if filter.FormID != "" && filter.StartDate == nil && filter.EndDate == nil {
		if cached := getStatsSnapshot(filter.FormID); cached != nil {
			return cached, nil
		}
	}

	return reduceMatching(ctx, filter)
}

// computeLiveStats bypasses the snapshot; the worker uses it to rebuild.
func computeLiveStats(ctx context.Context, formID string) (*models.FeedbackStats, error) {
	return reduceMatching(ctx, QueryFilter{FormID: formID})
}

func reduceMatching(ctx context.Context, filter QueryFilter) (*models.FeedbackStats, error) {
	query, err := filter.toBson()
	if err != nil {
		return nil, err
	}

	cursor, err := DB.FeedbackCollection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}

	return ReduceStats(feedbacks), nil
}

// --- Redis snapshot cache ---

func statsSnapshotKey(formID string) string {
	return fmt.Sprintf("stats:%s", formID)
}

func getStatsSnapshot(formID string) *models.FeedbackStats {
	if DB.RedisClient == nil {
		return nil
	}

	raw, err := DB.RedisClient.Get(DB.RedisCtx, statsSnapshotKey(formID)).Result()
	if err != nil {
		return nil
	}

	var stats models.FeedbackStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil
	}
	return &stats
}

func storeStatsSnapshot(formID string, stats *models.FeedbackStats) {
	if DB.RedisClient == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := DB.RedisClient.Set(DB.RedisCtx, statsSnapshotKey(formID), raw, statsSnapshotTTL).Err(); err != nil {
		log.Printf("[stats] failed to store snapshot form=%s: %v", formID, err)
	}
}
