// Code generated by ent, DO NOT EDIT.

package misconceptionentry

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldEQ(FieldLearnerID, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldEQ(FieldConcept, v))
}

// OccurrenceCount applies equality check predicate on the "occurrence_count" field. It's identical to OccurrenceCountEQ.
func OccurrenceCount(v int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldEQ(FieldOccurrenceCount, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldContainsFold(FieldLearnerID, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldContainsFold(FieldConcept, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldContainsFold(FieldLabel, v))
}

// OccurrenceCountEQ applies the EQ predicate on the "occurrence_count" field.
func OccurrenceCountEQ(v int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountNEQ applies the NEQ predicate on the "occurrence_count" field.
func OccurrenceCountNEQ(v int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldNEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountIn applies the In predicate on the "occurrence_count" field.
func OccurrenceCountIn(vs ...int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountNotIn applies the NotIn predicate on the "occurrence_count" field.
func OccurrenceCountNotIn(vs ...int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldNotIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountGT applies the GT predicate on the "occurrence_count" field.
func OccurrenceCountGT(v int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldGT(FieldOccurrenceCount, v))
}

// OccurrenceCountGTE applies the GTE predicate on the "occurrence_count" field.
func OccurrenceCountGTE(v int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldGTE(FieldOccurrenceCount, v))
}

// OccurrenceCountLT applies the LT predicate on the "occurrence_count" field.
func OccurrenceCountLT(v int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldLT(FieldOccurrenceCount, v))
}

// OccurrenceCountLTE applies the LTE predicate on the "occurrence_count" field.
func OccurrenceCountLTE(v int) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.FieldLTE(FieldOccurrenceCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MisconceptionEntry) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MisconceptionEntry) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MisconceptionEntry) predicate.MisconceptionEntry {
	return predicate.MisconceptionEntry(sql.NotPredicates(p))
}
