// Code generated by ent, DO NOT EDIT.

package plannedrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Kirizan/kitt-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContainsFold(FieldID, id))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldCampaignID, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldModelName, v))
}

// ModelRef applies equality check predicate on the "model_ref" field. It's identical to ModelRefEQ.
func ModelRef(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldModelRef, v))
}

// EngineName applies equality check predicate on the "engine_name" field. It's identical to EngineNameEQ.
func EngineName(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldEngineName, v))
}

// BenchmarkName applies equality check predicate on the "benchmark_name" field. It's identical to BenchmarkNameEQ.
func BenchmarkName(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldBenchmarkName, v))
}

// SuiteName applies equality check predicate on the "suite_name" field. It's identical to SuiteNameEQ.
func SuiteName(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldSuiteName, v))
}

// Quant applies equality check predicate on the "quant" field. It's identical to QuantEQ.
func Quant(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldQuant, v))
}

// EstimatedSizeGB applies equality check predicate on the "estimated_size_gb" field. It's identical to EstimatedSizeGBEQ.
func EstimatedSizeGB(v float64) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldEstimatedSizeGB, v))
}

// CommandID applies equality check predicate on the "command_id" field. It's identical to CommandIDEQ.
func CommandID(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldCommandID, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldErrorMessage, v))
}

// PlanIndex applies equality check predicate on the "plan_index" field. It's identical to PlanIndexEQ.
func PlanIndex(v int) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldPlanIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldCreatedAt, v))
}

// QueuedAt applies equality check predicate on the "queued_at" field. It's identical to QueuedAtEQ.
func QueuedAt(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldQueuedAt, v))
}

// DispatchedAt applies equality check predicate on the "dispatched_at" field. It's identical to DispatchedAtEQ.
func DispatchedAt(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldDispatchedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldCompletedAt, v))
}

// LastTransitionAt applies equality check predicate on the "last_transition_at" field. It's identical to LastTransitionAtEQ.
func LastTransitionAt(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldLastTransitionAt, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContainsFold(FieldCampaignID, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContainsFold(FieldModelName, v))
}

// ModelRefEQ applies the EQ predicate on the "model_ref" field.
func ModelRefEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldModelRef, v))
}

// ModelRefNEQ applies the NEQ predicate on the "model_ref" field.
func ModelRefNEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldModelRef, v))
}

// ModelRefIn applies the In predicate on the "model_ref" field.
func ModelRefIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldModelRef, vs...))
}

// ModelRefNotIn applies the NotIn predicate on the "model_ref" field.
func ModelRefNotIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldModelRef, vs...))
}

// ModelRefGT applies the GT predicate on the "model_ref" field.
func ModelRefGT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldModelRef, v))
}

// ModelRefGTE applies the GTE predicate on the "model_ref" field.
func ModelRefGTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldModelRef, v))
}

// ModelRefLT applies the LT predicate on the "model_ref" field.
func ModelRefLT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldModelRef, v))
}

// ModelRefLTE applies the LTE predicate on the "model_ref" field.
func ModelRefLTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldModelRef, v))
}

// ModelRefContains applies the Contains predicate on the "model_ref" field.
func ModelRefContains(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContains(FieldModelRef, v))
}

// ModelRefHasPrefix applies the HasPrefix predicate on the "model_ref" field.
func ModelRefHasPrefix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasPrefix(FieldModelRef, v))
}

// ModelRefHasSuffix applies the HasSuffix predicate on the "model_ref" field.
func ModelRefHasSuffix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasSuffix(FieldModelRef, v))
}

// ModelRefEqualFold applies the EqualFold predicate on the "model_ref" field.
func ModelRefEqualFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEqualFold(FieldModelRef, v))
}

// ModelRefContainsFold applies the ContainsFold predicate on the "model_ref" field.
func ModelRefContainsFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContainsFold(FieldModelRef, v))
}

// EngineNameEQ applies the EQ predicate on the "engine_name" field.
func EngineNameEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldEngineName, v))
}

// EngineNameNEQ applies the NEQ predicate on the "engine_name" field.
func EngineNameNEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldEngineName, v))
}

// EngineNameIn applies the In predicate on the "engine_name" field.
func EngineNameIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldEngineName, vs...))
}

// EngineNameNotIn applies the NotIn predicate on the "engine_name" field.
func EngineNameNotIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldEngineName, vs...))
}

// EngineNameGT applies the GT predicate on the "engine_name" field.
func EngineNameGT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldEngineName, v))
}

// EngineNameGTE applies the GTE predicate on the "engine_name" field.
func EngineNameGTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldEngineName, v))
}

// EngineNameLT applies the LT predicate on the "engine_name" field.
func EngineNameLT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldEngineName, v))
}

// EngineNameLTE applies the LTE predicate on the "engine_name" field.
func EngineNameLTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldEngineName, v))
}

// EngineNameContains applies the Contains predicate on the "engine_name" field.
func EngineNameContains(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContains(FieldEngineName, v))
}

// EngineNameHasPrefix applies the HasPrefix predicate on the "engine_name" field.
func EngineNameHasPrefix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasPrefix(FieldEngineName, v))
}

// EngineNameHasSuffix applies the HasSuffix predicate on the "engine_name" field.
func EngineNameHasSuffix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasSuffix(FieldEngineName, v))
}

// EngineNameEqualFold applies the EqualFold predicate on the "engine_name" field.
func EngineNameEqualFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEqualFold(FieldEngineName, v))
}

// EngineNameContainsFold applies the ContainsFold predicate on the "engine_name" field.
func EngineNameContainsFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContainsFold(FieldEngineName, v))
}

// EngineModeEQ applies the EQ predicate on the "engine_mode" field.
func EngineModeEQ(v EngineMode) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldEngineMode, v))
}

// EngineModeNEQ applies the NEQ predicate on the "engine_mode" field.
func EngineModeNEQ(v EngineMode) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldEngineMode, v))
}

// EngineModeIn applies the In predicate on the "engine_mode" field.
func EngineModeIn(vs ...EngineMode) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldEngineMode, vs...))
}

// EngineModeNotIn applies the NotIn predicate on the "engine_mode" field.
func EngineModeNotIn(vs ...EngineMode) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldEngineMode, vs...))
}

// BenchmarkNameEQ applies the EQ predicate on the "benchmark_name" field.
func BenchmarkNameEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldBenchmarkName, v))
}

// BenchmarkNameNEQ applies the NEQ predicate on the "benchmark_name" field.
func BenchmarkNameNEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldBenchmarkName, v))
}

// BenchmarkNameIn applies the In predicate on the "benchmark_name" field.
func BenchmarkNameIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldBenchmarkName, vs...))
}

// BenchmarkNameNotIn applies the NotIn predicate on the "benchmark_name" field.
func BenchmarkNameNotIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldBenchmarkName, vs...))
}

// BenchmarkNameGT applies the GT predicate on the "benchmark_name" field.
func BenchmarkNameGT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldBenchmarkName, v))
}

// BenchmarkNameGTE applies the GTE predicate on the "benchmark_name" field.
func BenchmarkNameGTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldBenchmarkName, v))
}

// BenchmarkNameLT applies the LT predicate on the "benchmark_name" field.
func BenchmarkNameLT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldBenchmarkName, v))
}

// BenchmarkNameLTE applies the LTE predicate on the "benchmark_name" field.
func BenchmarkNameLTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldBenchmarkName, v))
}

// BenchmarkNameContains applies the Contains predicate on the "benchmark_name" field.
func BenchmarkNameContains(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContains(FieldBenchmarkName, v))
}

// BenchmarkNameHasPrefix applies the HasPrefix predicate on the "benchmark_name" field.
func BenchmarkNameHasPrefix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasPrefix(FieldBenchmarkName, v))
}

// BenchmarkNameHasSuffix applies the HasSuffix predicate on the "benchmark_name" field.
func BenchmarkNameHasSuffix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasSuffix(FieldBenchmarkName, v))
}

// BenchmarkNameEqualFold applies the EqualFold predicate on the "benchmark_name" field.
func BenchmarkNameEqualFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEqualFold(FieldBenchmarkName, v))
}

// BenchmarkNameContainsFold applies the ContainsFold predicate on the "benchmark_name" field.
func BenchmarkNameContainsFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContainsFold(FieldBenchmarkName, v))
}

// SuiteNameEQ applies the EQ predicate on the "suite_name" field.
func SuiteNameEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldSuiteName, v))
}

// SuiteNameNEQ applies the NEQ predicate on the "suite_name" field.
func SuiteNameNEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldSuiteName, v))
}

// SuiteNameIn applies the In predicate on the "suite_name" field.
func SuiteNameIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldSuiteName, vs...))
}

// SuiteNameNotIn applies the NotIn predicate on the "suite_name" field.
func SuiteNameNotIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldSuiteName, vs...))
}

// SuiteNameGT applies the GT predicate on the "suite_name" field.
func SuiteNameGT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldSuiteName, v))
}

// SuiteNameGTE applies the GTE predicate on the "suite_name" field.
func SuiteNameGTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldSuiteName, v))
}

// SuiteNameLT applies the LT predicate on the "suite_name" field.
func SuiteNameLT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldSuiteName, v))
}

// SuiteNameLTE applies the LTE predicate on the "suite_name" field.
func SuiteNameLTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldSuiteName, v))
}

// SuiteNameContains applies the Contains predicate on the "suite_name" field.
func SuiteNameContains(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContains(FieldSuiteName, v))
}

// SuiteNameHasPrefix applies the HasPrefix predicate on the "suite_name" field.
func SuiteNameHasPrefix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasPrefix(FieldSuiteName, v))
}

// SuiteNameHasSuffix applies the HasSuffix predicate on the "suite_name" field.
func SuiteNameHasSuffix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasSuffix(FieldSuiteName, v))
}

// SuiteNameEqualFold applies the EqualFold predicate on the "suite_name" field.
func SuiteNameEqualFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEqualFold(FieldSuiteName, v))
}

// SuiteNameContainsFold applies the ContainsFold predicate on the "suite_name" field.
func SuiteNameContainsFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContainsFold(FieldSuiteName, v))
}

// QuantEQ applies the EQ predicate on the "quant" field.
func QuantEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldQuant, v))
}

// QuantNEQ applies the NEQ predicate on the "quant" field.
func QuantNEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldQuant, v))
}

// QuantIn applies the In predicate on the "quant" field.
func QuantIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldQuant, vs...))
}

// QuantNotIn applies the NotIn predicate on the "quant" field.
func QuantNotIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldQuant, vs...))
}

// QuantGT applies the GT predicate on the "quant" field.
func QuantGT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldQuant, v))
}

// QuantGTE applies the GTE predicate on the "quant" field.
func QuantGTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldQuant, v))
}

// QuantLT applies the LT predicate on the "quant" field.
func QuantLT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldQuant, v))
}

// QuantLTE applies the LTE predicate on the "quant" field.
func QuantLTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldQuant, v))
}

// QuantContains applies the Contains predicate on the "quant" field.
func QuantContains(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContains(FieldQuant, v))
}

// QuantHasPrefix applies the HasPrefix predicate on the "quant" field.
func QuantHasPrefix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasPrefix(FieldQuant, v))
}

// QuantHasSuffix applies the HasSuffix predicate on the "quant" field.
func QuantHasSuffix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasSuffix(FieldQuant, v))
}

// QuantEqualFold applies the EqualFold predicate on the "quant" field.
func QuantEqualFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEqualFold(FieldQuant, v))
}

// QuantContainsFold applies the ContainsFold predicate on the "quant" field.
func QuantContainsFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContainsFold(FieldQuant, v))
}

// EstimatedSizeGBEQ applies the EQ predicate on the "estimated_size_gb" field.
func EstimatedSizeGBEQ(v float64) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldEstimatedSizeGB, v))
}

// EstimatedSizeGBNEQ applies the NEQ predicate on the "estimated_size_gb" field.
func EstimatedSizeGBNEQ(v float64) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldEstimatedSizeGB, v))
}

// EstimatedSizeGBIn applies the In predicate on the "estimated_size_gb" field.
func EstimatedSizeGBIn(vs ...float64) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldEstimatedSizeGB, vs...))
}

// EstimatedSizeGBNotIn applies the NotIn predicate on the "estimated_size_gb" field.
func EstimatedSizeGBNotIn(vs ...float64) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldEstimatedSizeGB, vs...))
}

// EstimatedSizeGBGT applies the GT predicate on the "estimated_size_gb" field.
func EstimatedSizeGBGT(v float64) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldEstimatedSizeGB, v))
}

// EstimatedSizeGBGTE applies the GTE predicate on the "estimated_size_gb" field.
func EstimatedSizeGBGTE(v float64) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldEstimatedSizeGB, v))
}

// EstimatedSizeGBLT applies the LT predicate on the "estimated_size_gb" field.
func EstimatedSizeGBLT(v float64) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldEstimatedSizeGB, v))
}

// EstimatedSizeGBLTE applies the LTE predicate on the "estimated_size_gb" field.
func EstimatedSizeGBLTE(v float64) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldEstimatedSizeGB, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldStatus, vs...))
}

// CommandIDEQ applies the EQ predicate on the "command_id" field.
func CommandIDEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldCommandID, v))
}

// CommandIDNEQ applies the NEQ predicate on the "command_id" field.
func CommandIDNEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldCommandID, v))
}

// CommandIDIn applies the In predicate on the "command_id" field.
func CommandIDIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldCommandID, vs...))
}

// CommandIDNotIn applies the NotIn predicate on the "command_id" field.
func CommandIDNotIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldCommandID, vs...))
}

// CommandIDGT applies the GT predicate on the "command_id" field.
func CommandIDGT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldCommandID, v))
}

// CommandIDGTE applies the GTE predicate on the "command_id" field.
func CommandIDGTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldCommandID, v))
}

// CommandIDLT applies the LT predicate on the "command_id" field.
func CommandIDLT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldCommandID, v))
}

// CommandIDLTE applies the LTE predicate on the "command_id" field.
func CommandIDLTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldCommandID, v))
}

// CommandIDContains applies the Contains predicate on the "command_id" field.
func CommandIDContains(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContains(FieldCommandID, v))
}

// CommandIDHasPrefix applies the HasPrefix predicate on the "command_id" field.
func CommandIDHasPrefix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasPrefix(FieldCommandID, v))
}

// CommandIDHasSuffix applies the HasSuffix predicate on the "command_id" field.
func CommandIDHasSuffix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasSuffix(FieldCommandID, v))
}

// CommandIDIsNil applies the IsNil predicate on the "command_id" field.
func CommandIDIsNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIsNull(FieldCommandID))
}

// CommandIDNotNil applies the NotNil predicate on the "command_id" field.
func CommandIDNotNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotNull(FieldCommandID))
}

// CommandIDEqualFold applies the EqualFold predicate on the "command_id" field.
func CommandIDEqualFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEqualFold(FieldCommandID, v))
}

// CommandIDContainsFold applies the ContainsFold predicate on the "command_id" field.
func CommandIDContainsFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContainsFold(FieldCommandID, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PlanIndexEQ applies the EQ predicate on the "plan_index" field.
func PlanIndexEQ(v int) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldPlanIndex, v))
}

// PlanIndexNEQ applies the NEQ predicate on the "plan_index" field.
func PlanIndexNEQ(v int) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldPlanIndex, v))
}

// PlanIndexIn applies the In predicate on the "plan_index" field.
func PlanIndexIn(vs ...int) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldPlanIndex, vs...))
}

// PlanIndexNotIn applies the NotIn predicate on the "plan_index" field.
func PlanIndexNotIn(vs ...int) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldPlanIndex, vs...))
}

// PlanIndexGT applies the GT predicate on the "plan_index" field.
func PlanIndexGT(v int) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldPlanIndex, v))
}

// PlanIndexGTE applies the GTE predicate on the "plan_index" field.
func PlanIndexGTE(v int) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldPlanIndex, v))
}

// PlanIndexLT applies the LT predicate on the "plan_index" field.
func PlanIndexLT(v int) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldPlanIndex, v))
}

// PlanIndexLTE applies the LTE predicate on the "plan_index" field.
func PlanIndexLTE(v int) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldPlanIndex, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldCreatedAt, v))
}

// QueuedAtEQ applies the EQ predicate on the "queued_at" field.
func QueuedAtEQ(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldQueuedAt, v))
}

// QueuedAtNEQ applies the NEQ predicate on the "queued_at" field.
func QueuedAtNEQ(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldQueuedAt, v))
}

// QueuedAtIn applies the In predicate on the "queued_at" field.
func QueuedAtIn(vs ...time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldQueuedAt, vs...))
}

// QueuedAtNotIn applies the NotIn predicate on the "queued_at" field.
func QueuedAtNotIn(vs ...time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldQueuedAt, vs...))
}

// QueuedAtGT applies the GT predicate on the "queued_at" field.
func QueuedAtGT(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldQueuedAt, v))
}

// QueuedAtGTE applies the GTE predicate on the "queued_at" field.
func QueuedAtGTE(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldQueuedAt, v))
}

// QueuedAtLT applies the LT predicate on the "queued_at" field.
func QueuedAtLT(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldQueuedAt, v))
}

// QueuedAtLTE applies the LTE predicate on the "queued_at" field.
func QueuedAtLTE(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldQueuedAt, v))
}

// QueuedAtIsNil applies the IsNil predicate on the "queued_at" field.
func QueuedAtIsNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIsNull(FieldQueuedAt))
}

// QueuedAtNotNil applies the NotNil predicate on the "queued_at" field.
func QueuedAtNotNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotNull(FieldQueuedAt))
}

// DispatchedAtEQ applies the EQ predicate on the "dispatched_at" field.
func DispatchedAtEQ(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldDispatchedAt, v))
}

// DispatchedAtNEQ applies the NEQ predicate on the "dispatched_at" field.
func DispatchedAtNEQ(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldDispatchedAt, v))
}

// DispatchedAtIn applies the In predicate on the "dispatched_at" field.
func DispatchedAtIn(vs ...time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldDispatchedAt, vs...))
}

// DispatchedAtNotIn applies the NotIn predicate on the "dispatched_at" field.
func DispatchedAtNotIn(vs ...time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldDispatchedAt, vs...))
}

// DispatchedAtGT applies the GT predicate on the "dispatched_at" field.
func DispatchedAtGT(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldDispatchedAt, v))
}

// DispatchedAtGTE applies the GTE predicate on the "dispatched_at" field.
func DispatchedAtGTE(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldDispatchedAt, v))
}

// DispatchedAtLT applies the LT predicate on the "dispatched_at" field.
func DispatchedAtLT(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldDispatchedAt, v))
}

// DispatchedAtLTE applies the LTE predicate on the "dispatched_at" field.
func DispatchedAtLTE(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldDispatchedAt, v))
}

// DispatchedAtIsNil applies the IsNil predicate on the "dispatched_at" field.
func DispatchedAtIsNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIsNull(FieldDispatchedAt))
}

// DispatchedAtNotNil applies the NotNil predicate on the "dispatched_at" field.
func DispatchedAtNotNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotNull(FieldDispatchedAt))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotNull(FieldCompletedAt))
}

// LastTransitionAtEQ applies the EQ predicate on the "last_transition_at" field.
func LastTransitionAtEQ(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldEQ(FieldLastTransitionAt, v))
}

// LastTransitionAtNEQ applies the NEQ predicate on the "last_transition_at" field.
func LastTransitionAtNEQ(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNEQ(FieldLastTransitionAt, v))
}

// LastTransitionAtIn applies the In predicate on the "last_transition_at" field.
func LastTransitionAtIn(vs ...time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldIn(FieldLastTransitionAt, vs...))
}

// LastTransitionAtNotIn applies the NotIn predicate on the "last_transition_at" field.
func LastTransitionAtNotIn(vs ...time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldNotIn(FieldLastTransitionAt, vs...))
}

// LastTransitionAtGT applies the GT predicate on the "last_transition_at" field.
func LastTransitionAtGT(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGT(FieldLastTransitionAt, v))
}

// LastTransitionAtGTE applies the GTE predicate on the "last_transition_at" field.
func LastTransitionAtGTE(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldGTE(FieldLastTransitionAt, v))
}

// LastTransitionAtLT applies the LT predicate on the "last_transition_at" field.
func LastTransitionAtLT(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLT(FieldLastTransitionAt, v))
}

// LastTransitionAtLTE applies the LTE predicate on the "last_transition_at" field.
func LastTransitionAtLTE(v time.Time) predicate.PlannedRun {
	return predicate.PlannedRun(sql.FieldLTE(FieldLastTransitionAt, v))
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.PlannedRun {
	return predicate.PlannedRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.PlannedRun {
	return predicate.PlannedRun(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResult applies the HasEdge predicate on the "result" edge.
func HasResult() predicate.PlannedRun {
	return predicate.PlannedRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ResultTable, ResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultWith applies the HasEdge predicate on the "result" edge with a given conditions (other predicates).
func HasResultWith(preds ...predicate.RunResult) predicate.PlannedRun {
	return predicate.PlannedRun(func(s *sql.Selector) {
		step := newResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlannedRun) predicate.PlannedRun {
	return predicate.PlannedRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlannedRun) predicate.PlannedRun {
	return predicate.PlannedRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlannedRun) predicate.PlannedRun {
	return predicate.PlannedRun(sql.NotPredicates(p))
}
