// Code generated by ent, DO NOT EDIT.

package jobeval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/copymill/copymill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.JobEval {
	return predicate.JobEval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.JobEval {
	return predicate.JobEval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.JobEval {
	return predicate.JobEval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.JobEval {
	return predicate.JobEval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.JobEval {
	return predicate.JobEval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.JobEval {
	return predicate.JobEval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.JobEval {
	return predicate.JobEval(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.JobEval {
	return predicate.JobEval(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.JobEval {
	return predicate.JobEval(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldJobID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldStepID, v))
}

// Iteration applies equality check predicate on the "iteration" field. It's identical to IterationEQ.
func Iteration(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldIteration, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldOverallScore, v))
}

// ReadabilityScore applies equality check predicate on the "readability_score" field. It's identical to ReadabilityScoreEQ.
func ReadabilityScore(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldReadabilityScore, v))
}

// SeoScore applies equality check predicate on the "seo_score" field. It's identical to SeoScoreEQ.
func SeoScore(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldSeoScore, v))
}

// AccuracyScore applies equality check predicate on the "accuracy_score" field. It's identical to AccuracyScoreEQ.
func AccuracyScore(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldAccuracyScore, v))
}

// EngagementScore applies equality check predicate on the "engagement_score" field. It's identical to EngagementScoreEQ.
func EngagementScore(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldEngagementScore, v))
}

// BrandVoiceScore applies equality check predicate on the "brand_voice_score" field. It's identical to BrandVoiceScoreEQ.
func BrandVoiceScore(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldBrandVoiceScore, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldPassed, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldFeedback, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.JobEval {
	return predicate.JobEval(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.JobEval {
	return predicate.JobEval(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldContainsFold(FieldJobID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.JobEval {
	return predicate.JobEval(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.JobEval {
	return predicate.JobEval(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldContainsFold(FieldStepID, v))
}

// IterationEQ applies the EQ predicate on the "iteration" field.
func IterationEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldIteration, v))
}

// IterationNEQ applies the NEQ predicate on the "iteration" field.
func IterationNEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNEQ(FieldIteration, v))
}

// IterationIn applies the In predicate on the "iteration" field.
func IterationIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldIn(FieldIteration, vs...))
}

// IterationNotIn applies the NotIn predicate on the "iteration" field.
func IterationNotIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNotIn(FieldIteration, vs...))
}

// IterationGT applies the GT predicate on the "iteration" field.
func IterationGT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGT(FieldIteration, v))
}

// IterationGTE applies the GTE predicate on the "iteration" field.
func IterationGTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGTE(FieldIteration, v))
}

// IterationLT applies the LT predicate on the "iteration" field.
func IterationLT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLT(FieldIteration, v))
}

// IterationLTE applies the LTE predicate on the "iteration" field.
func IterationLTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLTE(FieldIteration, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLTE(FieldOverallScore, v))
}

// ReadabilityScoreEQ applies the EQ predicate on the "readability_score" field.
func ReadabilityScoreEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldReadabilityScore, v))
}

// ReadabilityScoreNEQ applies the NEQ predicate on the "readability_score" field.
func ReadabilityScoreNEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNEQ(FieldReadabilityScore, v))
}

// ReadabilityScoreIn applies the In predicate on the "readability_score" field.
func ReadabilityScoreIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldIn(FieldReadabilityScore, vs...))
}

// ReadabilityScoreNotIn applies the NotIn predicate on the "readability_score" field.
func ReadabilityScoreNotIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNotIn(FieldReadabilityScore, vs...))
}

// ReadabilityScoreGT applies the GT predicate on the "readability_score" field.
func ReadabilityScoreGT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGT(FieldReadabilityScore, v))
}

// ReadabilityScoreGTE applies the GTE predicate on the "readability_score" field.
func ReadabilityScoreGTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGTE(FieldReadabilityScore, v))
}

// ReadabilityScoreLT applies the LT predicate on the "readability_score" field.
func ReadabilityScoreLT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLT(FieldReadabilityScore, v))
}

// ReadabilityScoreLTE applies the LTE predicate on the "readability_score" field.
func ReadabilityScoreLTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLTE(FieldReadabilityScore, v))
}

// SeoScoreEQ applies the EQ predicate on the "seo_score" field.
func SeoScoreEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldSeoScore, v))
}

// SeoScoreNEQ applies the NEQ predicate on the "seo_score" field.
func SeoScoreNEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNEQ(FieldSeoScore, v))
}

// SeoScoreIn applies the In predicate on the "seo_score" field.
func SeoScoreIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldIn(FieldSeoScore, vs...))
}

// SeoScoreNotIn applies the NotIn predicate on the "seo_score" field.
func SeoScoreNotIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNotIn(FieldSeoScore, vs...))
}

// SeoScoreGT applies the GT predicate on the "seo_score" field.
func SeoScoreGT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGT(FieldSeoScore, v))
}

// SeoScoreGTE applies the GTE predicate on the "seo_score" field.
func SeoScoreGTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGTE(FieldSeoScore, v))
}

// SeoScoreLT applies the LT predicate on the "seo_score" field.
func SeoScoreLT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLT(FieldSeoScore, v))
}

// SeoScoreLTE applies the LTE predicate on the "seo_score" field.
func SeoScoreLTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLTE(FieldSeoScore, v))
}

// AccuracyScoreEQ applies the EQ predicate on the "accuracy_score" field.
func AccuracyScoreEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldAccuracyScore, v))
}

// AccuracyScoreNEQ applies the NEQ predicate on the "accuracy_score" field.
func AccuracyScoreNEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNEQ(FieldAccuracyScore, v))
}

// AccuracyScoreIn applies the In predicate on the "accuracy_score" field.
func AccuracyScoreIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldIn(FieldAccuracyScore, vs...))
}

// AccuracyScoreNotIn applies the NotIn predicate on the "accuracy_score" field.
func AccuracyScoreNotIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNotIn(FieldAccuracyScore, vs...))
}

// AccuracyScoreGT applies the GT predicate on the "accuracy_score" field.
func AccuracyScoreGT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGT(FieldAccuracyScore, v))
}

// AccuracyScoreGTE applies the GTE predicate on the "accuracy_score" field.
func AccuracyScoreGTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGTE(FieldAccuracyScore, v))
}

// AccuracyScoreLT applies the LT predicate on the "accuracy_score" field.
func AccuracyScoreLT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLT(FieldAccuracyScore, v))
}

// AccuracyScoreLTE applies the LTE predicate on the "accuracy_score" field.
func AccuracyScoreLTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLTE(FieldAccuracyScore, v))
}

// EngagementScoreEQ applies the EQ predicate on the "engagement_score" field.
func EngagementScoreEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldEngagementScore, v))
}

// EngagementScoreNEQ applies the NEQ predicate on the "engagement_score" field.
func EngagementScoreNEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNEQ(FieldEngagementScore, v))
}

// EngagementScoreIn applies the In predicate on the "engagement_score" field.
func EngagementScoreIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldIn(FieldEngagementScore, vs...))
}

// EngagementScoreNotIn applies the NotIn predicate on the "engagement_score" field.
func EngagementScoreNotIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNotIn(FieldEngagementScore, vs...))
}

// EngagementScoreGT applies the GT predicate on the "engagement_score" field.
func EngagementScoreGT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGT(FieldEngagementScore, v))
}

// EngagementScoreGTE applies the GTE predicate on the "engagement_score" field.
func EngagementScoreGTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGTE(FieldEngagementScore, v))
}

// EngagementScoreLT applies the LT predicate on the "engagement_score" field.
func EngagementScoreLT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLT(FieldEngagementScore, v))
}

// EngagementScoreLTE applies the LTE predicate on the "engagement_score" field.
func EngagementScoreLTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLTE(FieldEngagementScore, v))
}

// BrandVoiceScoreEQ applies the EQ predicate on the "brand_voice_score" field.
func BrandVoiceScoreEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldBrandVoiceScore, v))
}

// BrandVoiceScoreNEQ applies the NEQ predicate on the "brand_voice_score" field.
func BrandVoiceScoreNEQ(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNEQ(FieldBrandVoiceScore, v))
}

// BrandVoiceScoreIn applies the In predicate on the "brand_voice_score" field.
func BrandVoiceScoreIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldIn(FieldBrandVoiceScore, vs...))
}

// BrandVoiceScoreNotIn applies the NotIn predicate on the "brand_voice_score" field.
func BrandVoiceScoreNotIn(vs ...int) predicate.JobEval {
	return predicate.JobEval(sql.FieldNotIn(FieldBrandVoiceScore, vs...))
}

// BrandVoiceScoreGT applies the GT predicate on the "brand_voice_score" field.
func BrandVoiceScoreGT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGT(FieldBrandVoiceScore, v))
}

// BrandVoiceScoreGTE applies the GTE predicate on the "brand_voice_score" field.
func BrandVoiceScoreGTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldGTE(FieldBrandVoiceScore, v))
}

// BrandVoiceScoreLT applies the LT predicate on the "brand_voice_score" field.
func BrandVoiceScoreLT(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLT(FieldBrandVoiceScore, v))
}

// BrandVoiceScoreLTE applies the LTE predicate on the "brand_voice_score" field.
func BrandVoiceScoreLTE(v int) predicate.JobEval {
	return predicate.JobEval(sql.FieldLTE(FieldBrandVoiceScore, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.JobEval {
	return predicate.JobEval(sql.FieldNEQ(FieldPassed, v))
}

// IssuesIsNil applies the IsNil predicate on the "issues" field.
func IssuesIsNil() predicate.JobEval {
	return predicate.JobEval(sql.FieldIsNull(FieldIssues))
}

// IssuesNotNil applies the NotNil predicate on the "issues" field.
func IssuesNotNil() predicate.JobEval {
	return predicate.JobEval(sql.FieldNotNull(FieldIssues))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.JobEval {
	return predicate.JobEval(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.JobEval {
	return predicate.JobEval(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackIsNil applies the IsNil predicate on the "feedback" field.
func FeedbackIsNil() predicate.JobEval {
	return predicate.JobEval(sql.FieldIsNull(FieldFeedback))
}

// FeedbackNotNil applies the NotNil predicate on the "feedback" field.
func FeedbackNotNil() predicate.JobEval {
	return predicate.JobEval(sql.FieldNotNull(FieldFeedback))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.JobEval {
	return predicate.JobEval(sql.FieldContainsFold(FieldFeedback, v))
}

// FixedIssueIdsIsNil applies the IsNil predicate on the "fixed_issue_ids" field.
func FixedIssueIdsIsNil() predicate.JobEval {
	return predicate.JobEval(sql.FieldIsNull(FieldFixedIssueIds))
}

// FixedIssueIdsNotNil applies the NotNil predicate on the "fixed_issue_ids" field.
func FixedIssueIdsNotNil() predicate.JobEval {
	return predicate.JobEval(sql.FieldNotNull(FieldFixedIssueIds))
}

// PersistingIssueIdsIsNil applies the IsNil predicate on the "persisting_issue_ids" field.
func PersistingIssueIdsIsNil() predicate.JobEval {
	return predicate.JobEval(sql.FieldIsNull(FieldPersistingIssueIds))
}

// PersistingIssueIdsNotNil applies the NotNil predicate on the "persisting_issue_ids" field.
func PersistingIssueIdsNotNil() predicate.JobEval {
	return predicate.JobEval(sql.FieldNotNull(FieldPersistingIssueIds))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.JobEval {
	return predicate.JobEval(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.JobEval {
	return predicate.JobEval(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.JobEval {
	return predicate.JobEval(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.JobEval {
	return predicate.JobEval(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.JobEval {
	return predicate.JobEval(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.JobEval {
	return predicate.JobEval(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.JobEval {
	return predicate.JobEval(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.JobEval {
	return predicate.JobEval(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobEval {
	return predicate.JobEval(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.JobEval {
	return predicate.JobEval(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStep applies the HasEdge predicate on the "step" edge.
func HasStep() predicate.JobEval {
	return predicate.JobEval(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepWith applies the HasEdge predicate on the "step" edge with a given conditions (other predicates).
func HasStepWith(preds ...predicate.JobStep) predicate.JobEval {
	return predicate.JobEval(func(s *sql.Selector) {
		step := newStepStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobEval) predicate.JobEval {
	return predicate.JobEval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobEval) predicate.JobEval {
	return predicate.JobEval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobEval) predicate.JobEval {
	return predicate.JobEval(sql.NotPredicates(p))
}
