// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/archive"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
	"github.com/retinalab/screening-tracker/gen/ent/encounterfile"
	"github.com/retinalab/screening-tracker/gen/ent/glaucomafinding"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
	"github.com/retinalab/screening-tracker/gen/ent/retinopathyfinding"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArchive            = "Archive"
	TypeEncounter          = "Encounter"
	TypeEncounterFile      = "EncounterFile"
	TypeGlaucomaFinding    = "GlaucomaFinding"
	TypeRetinopathyFinding = "RetinopathyFinding"
)

// ArchiveMutation represents an operation that mutates the Archive nodes in the graph.
type ArchiveMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	filename         *string
	content_hash     *string
	processed_at     *time.Time
	clearedFields    map[string]struct{}
	encounter        *uuid.UUID
	clearedencounter bool
	done             bool
	oldValue         func(context.Context) (*Archive, error)
	predicates       []predicate.Archive
}

var _ ent.Mutation = (*ArchiveMutation)(nil)

// archiveOption allows management of the mutation configuration using functional options.
type archiveOption func(*ArchiveMutation)

// newArchiveMutation creates new mutation for the Archive entity.
func newArchiveMutation(c config, op Op, opts ...archiveOption) *ArchiveMutation {
	m := &ArchiveMutation{
		config:        c,
		op:            op,
		typ:           TypeArchive,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArchiveID sets the ID field of the mutation.
func withArchiveID(id uuid.UUID) archiveOption {
	return func(m *ArchiveMutation) {
		var (
			err   error
			once  sync.Once
			value *Archive
		)
		m.oldValue = func(ctx context.Context) (*Archive, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Archive.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArchive sets the old Archive of the mutation.
func withArchive(node *Archive) archiveOption {
	return func(m *ArchiveMutation) {
		m.oldValue = func(context.Context) (*Archive, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArchiveMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArchiveMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Archive entities.
func (m *ArchiveMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArchiveMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArchiveMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Archive.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *ArchiveMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ArchiveMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Archive entity.
// If the Archive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchiveMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ArchiveMutation) ResetFilename() {
	m.filename = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ArchiveMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ArchiveMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Archive entity.
// If the Archive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchiveMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ArchiveMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *ArchiveMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ArchiveMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Archive entity.
// If the Archive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchiveMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ArchiveMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// SetEncounterID sets the "encounter" edge to the Encounter entity by id.
func (m *ArchiveMutation) SetEncounterID(id uuid.UUID) {
	m.encounter = &id
}

// ClearEncounter clears the "encounter" edge to the Encounter entity.
func (m *ArchiveMutation) ClearEncounter() {
	m.clearedencounter = true
}

// EncounterCleared reports if the "encounter" edge to the Encounter entity was cleared.
func (m *ArchiveMutation) EncounterCleared() bool {
	return m.clearedencounter
}

// EncounterID returns the "encounter" edge ID in the mutation.
func (m *ArchiveMutation) EncounterID() (id uuid.UUID, exists bool) {
	if m.encounter != nil {
		return *m.encounter, true
	}
	return
}

// EncounterIDs returns the "encounter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EncounterID instead. It exists only for internal usage by the builders.
func (m *ArchiveMutation) EncounterIDs() (ids []uuid.UUID) {
	if id := m.encounter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEncounter resets all changes to the "encounter" edge.
func (m *ArchiveMutation) ResetEncounter() {
	m.encounter = nil
	m.clearedencounter = false
}

// Where appends a list predicates to the ArchiveMutation builder.
func (m *ArchiveMutation) Where(ps ...predicate.Archive) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArchiveMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArchiveMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Archive, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArchiveMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArchiveMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Archive).
func (m *ArchiveMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArchiveMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.filename != nil {
		fields = append(fields, archive.FieldFilename)
	}
	if m.content_hash != nil {
		fields = append(fields, archive.FieldContentHash)
	}
	if m.processed_at != nil {
		fields = append(fields, archive.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArchiveMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case archive.FieldFilename:
		return m.Filename()
	case archive.FieldContentHash:
		return m.ContentHash()
	case archive.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArchiveMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case archive.FieldFilename:
		return m.OldFilename(ctx)
	case archive.FieldContentHash:
		return m.OldContentHash(ctx)
	case archive.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Archive field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchiveMutation) SetField(name string, value ent.Value) error {
	switch name {
	case archive.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case archive.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case archive.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Archive field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArchiveMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArchiveMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchiveMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Archive numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArchiveMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArchiveMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArchiveMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Archive nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArchiveMutation) ResetField(name string) error {
	switch name {
	case archive.FieldFilename:
		m.ResetFilename()
		return nil
	case archive.FieldContentHash:
		m.ResetContentHash()
		return nil
	case archive.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Archive field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArchiveMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.encounter != nil {
		edges = append(edges, archive.EdgeEncounter)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArchiveMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case archive.EdgeEncounter:
		if id := m.encounter; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArchiveMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArchiveMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArchiveMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedencounter {
		edges = append(edges, archive.EdgeEncounter)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArchiveMutation) EdgeCleared(name string) bool {
	switch name {
	case archive.EdgeEncounter:
		return m.clearedencounter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArchiveMutation) ClearEdge(name string) error {
	switch name {
	case archive.EdgeEncounter:
		m.ClearEncounter()
		return nil
	}
	return fmt.Errorf("unknown Archive unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArchiveMutation) ResetEdge(name string) error {
	switch name {
	case archive.EdgeEncounter:
		m.ResetEncounter()
		return nil
	}
	return fmt.Errorf("unknown Archive edge %s", name)
}

// EncounterMutation represents an operation that mutates the Encounter nodes in the graph.
type EncounterMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	patient_name                *string
	patient_id                  *string
	capture_date                *string
	clearedFields               map[string]struct{}
	archive                     *uuid.UUID
	clearedarchive              bool
	files                       map[uuid.UUID]struct{}
	removedfiles                map[uuid.UUID]struct{}
	clearedfiles                bool
	retinopathy_findings        map[uuid.UUID]struct{}
	removedretinopathy_findings map[uuid.UUID]struct{}
	clearedretinopathy_findings bool
	glaucoma_findings           map[uuid.UUID]struct{}
	removedglaucoma_findings    map[uuid.UUID]struct{}
	clearedglaucoma_findings    bool
	done                        bool
	oldValue                    func(context.Context) (*Encounter, error)
	predicates                  []predicate.Encounter
}

var _ ent.Mutation = (*EncounterMutation)(nil)

// encounterOption allows management of the mutation configuration using functional options.
type encounterOption func(*EncounterMutation)

// newEncounterMutation creates new mutation for the Encounter entity.
func newEncounterMutation(c config, op Op, opts ...encounterOption) *EncounterMutation {
	m := &EncounterMutation{
		config:        c,
		op:            op,
		typ:           TypeEncounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEncounterID sets the ID field of the mutation.
func withEncounterID(id uuid.UUID) encounterOption {
	return func(m *EncounterMutation) {
		var (
			err   error
			once  sync.Once
			value *Encounter
		)
		m.oldValue = func(ctx context.Context) (*Encounter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Encounter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEncounter sets the old Encounter of the mutation.
func withEncounter(node *Encounter) encounterOption {
	return func(m *EncounterMutation) {
		m.oldValue = func(context.Context) (*Encounter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EncounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EncounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Encounter entities.
func (m *EncounterMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EncounterMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EncounterMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Encounter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetArchiveID sets the "archive_id" field.
func (m *EncounterMutation) SetArchiveID(u uuid.UUID) {
	m.archive = &u
}

// ArchiveID returns the value of the "archive_id" field in the mutation.
func (m *EncounterMutation) ArchiveID() (r uuid.UUID, exists bool) {
	v := m.archive
	if v == nil {
		return
	}
	return *v, true
}

// OldArchiveID returns the old "archive_id" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldArchiveID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchiveID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchiveID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchiveID: %w", err)
	}
	return oldValue.ArchiveID, nil
}

// ResetArchiveID resets all changes to the "archive_id" field.
func (m *EncounterMutation) ResetArchiveID() {
	m.archive = nil
}

// SetPatientName sets the "patient_name" field.
func (m *EncounterMutation) SetPatientName(s string) {
	m.patient_name = &s
}

// PatientName returns the value of the "patient_name" field in the mutation.
func (m *EncounterMutation) PatientName() (r string, exists bool) {
	v := m.patient_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientName returns the old "patient_name" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldPatientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientName: %w", err)
	}
	return oldValue.PatientName, nil
}

// ResetPatientName resets all changes to the "patient_name" field.
func (m *EncounterMutation) ResetPatientName() {
	m.patient_name = nil
}

// SetPatientID sets the "patient_id" field.
func (m *EncounterMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *EncounterMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *EncounterMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetCaptureDate sets the "capture_date" field.
func (m *EncounterMutation) SetCaptureDate(s string) {
	m.capture_date = &s
}

// CaptureDate returns the value of the "capture_date" field in the mutation.
func (m *EncounterMutation) CaptureDate() (r string, exists bool) {
	v := m.capture_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCaptureDate returns the old "capture_date" field's value of the Encounter entity.
// If the Encounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterMutation) OldCaptureDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaptureDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaptureDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaptureDate: %w", err)
	}
	return oldValue.CaptureDate, nil
}

// ResetCaptureDate resets all changes to the "capture_date" field.
func (m *EncounterMutation) ResetCaptureDate() {
	m.capture_date = nil
}

// ClearArchive clears the "archive" edge to the Archive entity.
func (m *EncounterMutation) ClearArchive() {
	m.clearedarchive = true
	m.clearedFields[encounter.FieldArchiveID] = struct{}{}
}

// ArchiveCleared reports if the "archive" edge to the Archive entity was cleared.
func (m *EncounterMutation) ArchiveCleared() bool {
	return m.clearedarchive
}

// ArchiveIDs returns the "archive" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArchiveID instead. It exists only for internal usage by the builders.
func (m *EncounterMutation) ArchiveIDs() (ids []uuid.UUID) {
	if id := m.archive; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArchive resets all changes to the "archive" edge.
func (m *EncounterMutation) ResetArchive() {
	m.archive = nil
	m.clearedarchive = false
}

// AddFileIDs adds the "files" edge to the EncounterFile entity by ids.
func (m *EncounterMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the EncounterFile entity.
func (m *EncounterMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the EncounterFile entity was cleared.
func (m *EncounterMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the EncounterFile entity by IDs.
func (m *EncounterMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the EncounterFile entity.
func (m *EncounterMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *EncounterMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *EncounterMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddRetinopathyFindingIDs adds the "retinopathy_findings" edge to the RetinopathyFinding entity by ids.
func (m *EncounterMutation) AddRetinopathyFindingIDs(ids ...uuid.UUID) {
	if m.retinopathy_findings == nil {
		m.retinopathy_findings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.retinopathy_findings[ids[i]] = struct{}{}
	}
}

// ClearRetinopathyFindings clears the "retinopathy_findings" edge to the RetinopathyFinding entity.
func (m *EncounterMutation) ClearRetinopathyFindings() {
	m.clearedretinopathy_findings = true
}

// RetinopathyFindingsCleared reports if the "retinopathy_findings" edge to the RetinopathyFinding entity was cleared.
func (m *EncounterMutation) RetinopathyFindingsCleared() bool {
	return m.clearedretinopathy_findings
}

// RemoveRetinopathyFindingIDs removes the "retinopathy_findings" edge to the RetinopathyFinding entity by IDs.
func (m *EncounterMutation) RemoveRetinopathyFindingIDs(ids ...uuid.UUID) {
	if m.removedretinopathy_findings == nil {
		m.removedretinopathy_findings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.retinopathy_findings, ids[i])
		m.removedretinopathy_findings[ids[i]] = struct{}{}
	}
}

// RemovedRetinopathyFindings returns the removed IDs of the "retinopathy_findings" edge to the RetinopathyFinding entity.
func (m *EncounterMutation) RemovedRetinopathyFindingsIDs() (ids []uuid.UUID) {
	for id := range m.removedretinopathy_findings {
		ids = append(ids, id)
	}
	return
}

// RetinopathyFindingsIDs returns the "retinopathy_findings" edge IDs in the mutation.
func (m *EncounterMutation) RetinopathyFindingsIDs() (ids []uuid.UUID) {
	for id := range m.retinopathy_findings {
		ids = append(ids, id)
	}
	return
}

// ResetRetinopathyFindings resets all changes to the "retinopathy_findings" edge.
func (m *EncounterMutation) ResetRetinopathyFindings() {
	m.retinopathy_findings = nil
	m.clearedretinopathy_findings = false
	m.removedretinopathy_findings = nil
}

// AddGlaucomaFindingIDs adds the "glaucoma_findings" edge to the GlaucomaFinding entity by ids.
func (m *EncounterMutation) AddGlaucomaFindingIDs(ids ...uuid.UUID) {
	if m.glaucoma_findings == nil {
		m.glaucoma_findings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.glaucoma_findings[ids[i]] = struct{}{}
	}
}

// ClearGlaucomaFindings clears the "glaucoma_findings" edge to the GlaucomaFinding entity.
func (m *EncounterMutation) ClearGlaucomaFindings() {
	m.clearedglaucoma_findings = true
}

// GlaucomaFindingsCleared reports if the "glaucoma_findings" edge to the GlaucomaFinding entity was cleared.
func (m *EncounterMutation) GlaucomaFindingsCleared() bool {
	return m.clearedglaucoma_findings
}

// RemoveGlaucomaFindingIDs removes the "glaucoma_findings" edge to the GlaucomaFinding entity by IDs.
func (m *EncounterMutation) RemoveGlaucomaFindingIDs(ids ...uuid.UUID) {
	if m.removedglaucoma_findings == nil {
		m.removedglaucoma_findings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.glaucoma_findings, ids[i])
		m.removedglaucoma_findings[ids[i]] = struct{}{}
	}
}

// RemovedGlaucomaFindings returns the removed IDs of the "glaucoma_findings" edge to the GlaucomaFinding entity.
func (m *EncounterMutation) RemovedGlaucomaFindingsIDs() (ids []uuid.UUID) {
	for id := range m.removedglaucoma_findings {
		ids = append(ids, id)
	}
	return
}

// GlaucomaFindingsIDs returns the "glaucoma_findings" edge IDs in the mutation.
func (m *EncounterMutation) GlaucomaFindingsIDs() (ids []uuid.UUID) {
	for id := range m.glaucoma_findings {
		ids = append(ids, id)
	}
	return
}

// ResetGlaucomaFindings resets all changes to the "glaucoma_findings" edge.
func (m *EncounterMutation) ResetGlaucomaFindings() {
	m.glaucoma_findings = nil
	m.clearedglaucoma_findings = false
	m.removedglaucoma_findings = nil
}

// Where appends a list predicates to the EncounterMutation builder.
func (m *EncounterMutation) Where(ps ...predicate.Encounter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EncounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EncounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Encounter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EncounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EncounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Encounter).
func (m *EncounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EncounterMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.archive != nil {
		fields = append(fields, encounter.FieldArchiveID)
	}
	if m.patient_name != nil {
		fields = append(fields, encounter.FieldPatientName)
	}
	if m.patient_id != nil {
		fields = append(fields, encounter.FieldPatientID)
	}
	if m.capture_date != nil {
		fields = append(fields, encounter.FieldCaptureDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EncounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case encounter.FieldArchiveID:
		return m.ArchiveID()
	case encounter.FieldPatientName:
		return m.PatientName()
	case encounter.FieldPatientID:
		return m.PatientID()
	case encounter.FieldCaptureDate:
		return m.CaptureDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EncounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case encounter.FieldArchiveID:
		return m.OldArchiveID(ctx)
	case encounter.FieldPatientName:
		return m.OldPatientName(ctx)
	case encounter.FieldPatientID:
		return m.OldPatientID(ctx)
	case encounter.FieldCaptureDate:
		return m.OldCaptureDate(ctx)
	}
	return nil, fmt.Errorf("unknown Encounter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EncounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case encounter.FieldArchiveID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchiveID(v)
		return nil
	case encounter.FieldPatientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientName(v)
		return nil
	case encounter.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case encounter.FieldCaptureDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaptureDate(v)
		return nil
	}
	return fmt.Errorf("unknown Encounter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EncounterMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EncounterMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EncounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Encounter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EncounterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EncounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EncounterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Encounter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EncounterMutation) ResetField(name string) error {
	switch name {
	case encounter.FieldArchiveID:
		m.ResetArchiveID()
		return nil
	case encounter.FieldPatientName:
		m.ResetPatientName()
		return nil
	case encounter.FieldPatientID:
		m.ResetPatientID()
		return nil
	case encounter.FieldCaptureDate:
		m.ResetCaptureDate()
		return nil
	}
	return fmt.Errorf("unknown Encounter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EncounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.archive != nil {
		edges = append(edges, encounter.EdgeArchive)
	}
	if m.files != nil {
		edges = append(edges, encounter.EdgeFiles)
	}
	if m.retinopathy_findings != nil {
		edges = append(edges, encounter.EdgeRetinopathyFindings)
	}
	if m.glaucoma_findings != nil {
		edges = append(edges, encounter.EdgeGlaucomaFindings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EncounterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case encounter.EdgeArchive:
		if id := m.archive; id != nil {
			return []ent.Value{*id}
		}
	case encounter.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case encounter.EdgeRetinopathyFindings:
		ids := make([]ent.Value, 0, len(m.retinopathy_findings))
		for id := range m.retinopathy_findings {
			ids = append(ids, id)
		}
		return ids
	case encounter.EdgeGlaucomaFindings:
		ids := make([]ent.Value, 0, len(m.glaucoma_findings))
		for id := range m.glaucoma_findings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EncounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedfiles != nil {
		edges = append(edges, encounter.EdgeFiles)
	}
	if m.removedretinopathy_findings != nil {
		edges = append(edges, encounter.EdgeRetinopathyFindings)
	}
	if m.removedglaucoma_findings != nil {
		edges = append(edges, encounter.EdgeGlaucomaFindings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EncounterMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case encounter.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case encounter.EdgeRetinopathyFindings:
		ids := make([]ent.Value, 0, len(m.removedretinopathy_findings))
		for id := range m.removedretinopathy_findings {
			ids = append(ids, id)
		}
		return ids
	case encounter.EdgeGlaucomaFindings:
		ids := make([]ent.Value, 0, len(m.removedglaucoma_findings))
		for id := range m.removedglaucoma_findings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EncounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedarchive {
		edges = append(edges, encounter.EdgeArchive)
	}
	if m.clearedfiles {
		edges = append(edges, encounter.EdgeFiles)
	}
	if m.clearedretinopathy_findings {
		edges = append(edges, encounter.EdgeRetinopathyFindings)
	}
	if m.clearedglaucoma_findings {
		edges = append(edges, encounter.EdgeGlaucomaFindings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EncounterMutation) EdgeCleared(name string) bool {
	switch name {
	case encounter.EdgeArchive:
		return m.clearedarchive
	case encounter.EdgeFiles:
		return m.clearedfiles
	case encounter.EdgeRetinopathyFindings:
		return m.clearedretinopathy_findings
	case encounter.EdgeGlaucomaFindings:
		return m.clearedglaucoma_findings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EncounterMutation) ClearEdge(name string) error {
	switch name {
	case encounter.EdgeArchive:
		m.ClearArchive()
		return nil
	}
	return fmt.Errorf("unknown Encounter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EncounterMutation) ResetEdge(name string) error {
	switch name {
	case encounter.EdgeArchive:
		m.ResetArchive()
		return nil
	case encounter.EdgeFiles:
		m.ResetFiles()
		return nil
	case encounter.EdgeRetinopathyFindings:
		m.ResetRetinopathyFindings()
		return nil
	case encounter.EdgeGlaucomaFindings:
		m.ResetGlaucomaFindings()
		return nil
	}
	return fmt.Errorf("unknown Encounter edge %s", name)
}

// EncounterFileMutation represents an operation that mutates the EncounterFile nodes in the graph.
type EncounterFileMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	filename         *string
	file_type        *string
	ocr_processed    *bool
	clearedFields    map[string]struct{}
	encounter        *uuid.UUID
	clearedencounter bool
	done             bool
	oldValue         func(context.Context) (*EncounterFile, error)
	predicates       []predicate.EncounterFile
}

var _ ent.Mutation = (*EncounterFileMutation)(nil)

// encounterfileOption allows management of the mutation configuration using functional options.
type encounterfileOption func(*EncounterFileMutation)

// newEncounterFileMutation creates new mutation for the EncounterFile entity.
func newEncounterFileMutation(c config, op Op, opts ...encounterfileOption) *EncounterFileMutation {
	m := &EncounterFileMutation{
		config:        c,
		op:            op,
		typ:           TypeEncounterFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEncounterFileID sets the ID field of the mutation.
func withEncounterFileID(id uuid.UUID) encounterfileOption {
	return func(m *EncounterFileMutation) {
		var (
			err   error
			once  sync.Once
			value *EncounterFile
		)
		m.oldValue = func(ctx context.Context) (*EncounterFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EncounterFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEncounterFile sets the old EncounterFile of the mutation.
func withEncounterFile(node *EncounterFile) encounterfileOption {
	return func(m *EncounterFileMutation) {
		m.oldValue = func(context.Context) (*EncounterFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EncounterFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EncounterFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EncounterFile entities.
func (m *EncounterFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EncounterFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EncounterFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EncounterFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEncounterID sets the "encounter_id" field.
func (m *EncounterFileMutation) SetEncounterID(u uuid.UUID) {
	m.encounter = &u
}

// EncounterID returns the value of the "encounter_id" field in the mutation.
func (m *EncounterFileMutation) EncounterID() (r uuid.UUID, exists bool) {
	v := m.encounter
	if v == nil {
		return
	}
	return *v, true
}

// OldEncounterID returns the old "encounter_id" field's value of the EncounterFile entity.
// If the EncounterFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterFileMutation) OldEncounterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncounterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncounterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncounterID: %w", err)
	}
	return oldValue.EncounterID, nil
}

// ResetEncounterID resets all changes to the "encounter_id" field.
func (m *EncounterFileMutation) ResetEncounterID() {
	m.encounter = nil
}

// SetFilename sets the "filename" field.
func (m *EncounterFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *EncounterFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the EncounterFile entity.
// If the EncounterFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *EncounterFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileType sets the "file_type" field.
func (m *EncounterFileMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *EncounterFileMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the EncounterFile entity.
// If the EncounterFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterFileMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *EncounterFileMutation) ResetFileType() {
	m.file_type = nil
}

// SetOcrProcessed sets the "ocr_processed" field.
func (m *EncounterFileMutation) SetOcrProcessed(b bool) {
	m.ocr_processed = &b
}

// OcrProcessed returns the value of the "ocr_processed" field in the mutation.
func (m *EncounterFileMutation) OcrProcessed() (r bool, exists bool) {
	v := m.ocr_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrProcessed returns the old "ocr_processed" field's value of the EncounterFile entity.
// If the EncounterFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EncounterFileMutation) OldOcrProcessed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrProcessed: %w", err)
	}
	return oldValue.OcrProcessed, nil
}

// ResetOcrProcessed resets all changes to the "ocr_processed" field.
func (m *EncounterFileMutation) ResetOcrProcessed() {
	m.ocr_processed = nil
}

// ClearEncounter clears the "encounter" edge to the Encounter entity.
func (m *EncounterFileMutation) ClearEncounter() {
	m.clearedencounter = true
	m.clearedFields[encounterfile.FieldEncounterID] = struct{}{}
}

// EncounterCleared reports if the "encounter" edge to the Encounter entity was cleared.
func (m *EncounterFileMutation) EncounterCleared() bool {
	return m.clearedencounter
}

// EncounterIDs returns the "encounter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EncounterID instead. It exists only for internal usage by the builders.
func (m *EncounterFileMutation) EncounterIDs() (ids []uuid.UUID) {
	if id := m.encounter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEncounter resets all changes to the "encounter" edge.
func (m *EncounterFileMutation) ResetEncounter() {
	m.encounter = nil
	m.clearedencounter = false
}

// Where appends a list predicates to the EncounterFileMutation builder.
func (m *EncounterFileMutation) Where(ps ...predicate.EncounterFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EncounterFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EncounterFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EncounterFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EncounterFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EncounterFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EncounterFile).
func (m *EncounterFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EncounterFileMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.encounter != nil {
		fields = append(fields, encounterfile.FieldEncounterID)
	}
	if m.filename != nil {
		fields = append(fields, encounterfile.FieldFilename)
	}
	if m.file_type != nil {
		fields = append(fields, encounterfile.FieldFileType)
	}
	if m.ocr_processed != nil {
		fields = append(fields, encounterfile.FieldOcrProcessed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EncounterFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case encounterfile.FieldEncounterID:
		return m.EncounterID()
	case encounterfile.FieldFilename:
		return m.Filename()
	case encounterfile.FieldFileType:
		return m.FileType()
	case encounterfile.FieldOcrProcessed:
		return m.OcrProcessed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EncounterFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case encounterfile.FieldEncounterID:
		return m.OldEncounterID(ctx)
	case encounterfile.FieldFilename:
		return m.OldFilename(ctx)
	case encounterfile.FieldFileType:
		return m.OldFileType(ctx)
	case encounterfile.FieldOcrProcessed:
		return m.OldOcrProcessed(ctx)
	}
	return nil, fmt.Errorf("unknown EncounterFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EncounterFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case encounterfile.FieldEncounterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncounterID(v)
		return nil
	case encounterfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case encounterfile.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case encounterfile.FieldOcrProcessed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrProcessed(v)
		return nil
	}
	return fmt.Errorf("unknown EncounterFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EncounterFileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EncounterFileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EncounterFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EncounterFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EncounterFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EncounterFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EncounterFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EncounterFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EncounterFileMutation) ResetField(name string) error {
	switch name {
	case encounterfile.FieldEncounterID:
		m.ResetEncounterID()
		return nil
	case encounterfile.FieldFilename:
		m.ResetFilename()
		return nil
	case encounterfile.FieldFileType:
		m.ResetFileType()
		return nil
	case encounterfile.FieldOcrProcessed:
		m.ResetOcrProcessed()
		return nil
	}
	return fmt.Errorf("unknown EncounterFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EncounterFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.encounter != nil {
		edges = append(edges, encounterfile.EdgeEncounter)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EncounterFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case encounterfile.EdgeEncounter:
		if id := m.encounter; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EncounterFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EncounterFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EncounterFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedencounter {
		edges = append(edges, encounterfile.EdgeEncounter)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EncounterFileMutation) EdgeCleared(name string) bool {
	switch name {
	case encounterfile.EdgeEncounter:
		return m.clearedencounter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EncounterFileMutation) ClearEdge(name string) error {
	switch name {
	case encounterfile.EdgeEncounter:
		m.ClearEncounter()
		return nil
	}
	return fmt.Errorf("unknown EncounterFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EncounterFileMutation) ResetEdge(name string) error {
	switch name {
	case encounterfile.EdgeEncounter:
		m.ResetEncounter()
		return nil
	}
	return fmt.Errorf("unknown EncounterFile edge %s", name)
}

// GlaucomaFindingMutation represents an operation that mutates the GlaucomaFinding nodes in the graph.
type GlaucomaFindingMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	vcdr_right       *float64
	addvcdr_right    *float64
	vcdr_left        *float64
	addvcdr_left     *float64
	result           *string
	clearedFields    map[string]struct{}
	encounter        *uuid.UUID
	clearedencounter bool
	done             bool
	oldValue         func(context.Context) (*GlaucomaFinding, error)
	predicates       []predicate.GlaucomaFinding
}

var _ ent.Mutation = (*GlaucomaFindingMutation)(nil)

// glaucomafindingOption allows management of the mutation configuration using functional options.
type glaucomafindingOption func(*GlaucomaFindingMutation)

// newGlaucomaFindingMutation creates new mutation for the GlaucomaFinding entity.
func newGlaucomaFindingMutation(c config, op Op, opts ...glaucomafindingOption) *GlaucomaFindingMutation {
	m := &GlaucomaFindingMutation{
		config:        c,
		op:            op,
		typ:           TypeGlaucomaFinding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGlaucomaFindingID sets the ID field of the mutation.
func withGlaucomaFindingID(id uuid.UUID) glaucomafindingOption {
	return func(m *GlaucomaFindingMutation) {
		var (
			err   error
			once  sync.Once
			value *GlaucomaFinding
		)
		m.oldValue = func(ctx context.Context) (*GlaucomaFinding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GlaucomaFinding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGlaucomaFinding sets the old GlaucomaFinding of the mutation.
func withGlaucomaFinding(node *GlaucomaFinding) glaucomafindingOption {
	return func(m *GlaucomaFindingMutation) {
		m.oldValue = func(context.Context) (*GlaucomaFinding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GlaucomaFindingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GlaucomaFindingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GlaucomaFinding entities.
func (m *GlaucomaFindingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GlaucomaFindingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GlaucomaFindingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GlaucomaFinding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEncounterID sets the "encounter_id" field.
func (m *GlaucomaFindingMutation) SetEncounterID(u uuid.UUID) {
	m.encounter = &u
}

// EncounterID returns the value of the "encounter_id" field in the mutation.
func (m *GlaucomaFindingMutation) EncounterID() (r uuid.UUID, exists bool) {
	v := m.encounter
	if v == nil {
		return
	}
	return *v, true
}

// OldEncounterID returns the old "encounter_id" field's value of the GlaucomaFinding entity.
// If the GlaucomaFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlaucomaFindingMutation) OldEncounterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncounterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncounterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncounterID: %w", err)
	}
	return oldValue.EncounterID, nil
}

// ResetEncounterID resets all changes to the "encounter_id" field.
func (m *GlaucomaFindingMutation) ResetEncounterID() {
	m.encounter = nil
}

// SetVcdrRight sets the "vcdr_right" field.
func (m *GlaucomaFindingMutation) SetVcdrRight(f float64) {
	m.vcdr_right = &f
	m.addvcdr_right = nil
}

// VcdrRight returns the value of the "vcdr_right" field in the mutation.
func (m *GlaucomaFindingMutation) VcdrRight() (r float64, exists bool) {
	v := m.vcdr_right
	if v == nil {
		return
	}
	return *v, true
}

// OldVcdrRight returns the old "vcdr_right" field's value of the GlaucomaFinding entity.
// If the GlaucomaFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlaucomaFindingMutation) OldVcdrRight(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVcdrRight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVcdrRight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVcdrRight: %w", err)
	}
	return oldValue.VcdrRight, nil
}

// AddVcdrRight adds f to the "vcdr_right" field.
func (m *GlaucomaFindingMutation) AddVcdrRight(f float64) {
	if m.addvcdr_right != nil {
		*m.addvcdr_right += f
	} else {
		m.addvcdr_right = &f
	}
}

// AddedVcdrRight returns the value that was added to the "vcdr_right" field in this mutation.
func (m *GlaucomaFindingMutation) AddedVcdrRight() (r float64, exists bool) {
	v := m.addvcdr_right
	if v == nil {
		return
	}
	return *v, true
}

// ClearVcdrRight clears the value of the "vcdr_right" field.
func (m *GlaucomaFindingMutation) ClearVcdrRight() {
	m.vcdr_right = nil
	m.addvcdr_right = nil
	m.clearedFields[glaucomafinding.FieldVcdrRight] = struct{}{}
}

// VcdrRightCleared returns if the "vcdr_right" field was cleared in this mutation.
func (m *GlaucomaFindingMutation) VcdrRightCleared() bool {
	_, ok := m.clearedFields[glaucomafinding.FieldVcdrRight]
	return ok
}

// ResetVcdrRight resets all changes to the "vcdr_right" field.
func (m *GlaucomaFindingMutation) ResetVcdrRight() {
	m.vcdr_right = nil
	m.addvcdr_right = nil
	delete(m.clearedFields, glaucomafinding.FieldVcdrRight)
}

// SetVcdrLeft sets the "vcdr_left" field.
func (m *GlaucomaFindingMutation) SetVcdrLeft(f float64) {
	m.vcdr_left = &f
	m.addvcdr_left = nil
}

// VcdrLeft returns the value of the "vcdr_left" field in the mutation.
func (m *GlaucomaFindingMutation) VcdrLeft() (r float64, exists bool) {
	v := m.vcdr_left
	if v == nil {
		return
	}
	return *v, true
}

// OldVcdrLeft returns the old "vcdr_left" field's value of the GlaucomaFinding entity.
// If the GlaucomaFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlaucomaFindingMutation) OldVcdrLeft(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVcdrLeft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVcdrLeft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVcdrLeft: %w", err)
	}
	return oldValue.VcdrLeft, nil
}

// AddVcdrLeft adds f to the "vcdr_left" field.
func (m *GlaucomaFindingMutation) AddVcdrLeft(f float64) {
	if m.addvcdr_left != nil {
		*m.addvcdr_left += f
	} else {
		m.addvcdr_left = &f
	}
}

// AddedVcdrLeft returns the value that was added to the "vcdr_left" field in this mutation.
func (m *GlaucomaFindingMutation) AddedVcdrLeft() (r float64, exists bool) {
	v := m.addvcdr_left
	if v == nil {
		return
	}
	return *v, true
}

// ClearVcdrLeft clears the value of the "vcdr_left" field.
func (m *GlaucomaFindingMutation) ClearVcdrLeft() {
	m.vcdr_left = nil
	m.addvcdr_left = nil
	m.clearedFields[glaucomafinding.FieldVcdrLeft] = struct{}{}
}

// VcdrLeftCleared returns if the "vcdr_left" field was cleared in this mutation.
func (m *GlaucomaFindingMutation) VcdrLeftCleared() bool {
	_, ok := m.clearedFields[glaucomafinding.FieldVcdrLeft]
	return ok
}

// ResetVcdrLeft resets all changes to the "vcdr_left" field.
func (m *GlaucomaFindingMutation) ResetVcdrLeft() {
	m.vcdr_left = nil
	m.addvcdr_left = nil
	delete(m.clearedFields, glaucomafinding.FieldVcdrLeft)
}

// SetResult sets the "result" field.
func (m *GlaucomaFindingMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *GlaucomaFindingMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the GlaucomaFinding entity.
// If the GlaucomaFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlaucomaFindingMutation) OldResult(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ResetResult resets all changes to the "result" field.
func (m *GlaucomaFindingMutation) ResetResult() {
	m.result = nil
}

// ClearEncounter clears the "encounter" edge to the Encounter entity.
func (m *GlaucomaFindingMutation) ClearEncounter() {
	m.clearedencounter = true
	m.clearedFields[glaucomafinding.FieldEncounterID] = struct{}{}
}

// EncounterCleared reports if the "encounter" edge to the Encounter entity was cleared.
func (m *GlaucomaFindingMutation) EncounterCleared() bool {
	return m.clearedencounter
}

// EncounterIDs returns the "encounter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EncounterID instead. It exists only for internal usage by the builders.
func (m *GlaucomaFindingMutation) EncounterIDs() (ids []uuid.UUID) {
	if id := m.encounter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEncounter resets all changes to the "encounter" edge.
func (m *GlaucomaFindingMutation) ResetEncounter() {
	m.encounter = nil
	m.clearedencounter = false
}

// Where appends a list predicates to the GlaucomaFindingMutation builder.
func (m *GlaucomaFindingMutation) Where(ps ...predicate.GlaucomaFinding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GlaucomaFindingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GlaucomaFindingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GlaucomaFinding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GlaucomaFindingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GlaucomaFindingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GlaucomaFinding).
func (m *GlaucomaFindingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GlaucomaFindingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.encounter != nil {
		fields = append(fields, glaucomafinding.FieldEncounterID)
	}
	if m.vcdr_right != nil {
		fields = append(fields, glaucomafinding.FieldVcdrRight)
	}
	if m.vcdr_left != nil {
		fields = append(fields, glaucomafinding.FieldVcdrLeft)
	}
	if m.result != nil {
		fields = append(fields, glaucomafinding.FieldResult)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GlaucomaFindingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case glaucomafinding.FieldEncounterID:
		return m.EncounterID()
	case glaucomafinding.FieldVcdrRight:
		return m.VcdrRight()
	case glaucomafinding.FieldVcdrLeft:
		return m.VcdrLeft()
	case glaucomafinding.FieldResult:
		return m.Result()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GlaucomaFindingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case glaucomafinding.FieldEncounterID:
		return m.OldEncounterID(ctx)
	case glaucomafinding.FieldVcdrRight:
		return m.OldVcdrRight(ctx)
	case glaucomafinding.FieldVcdrLeft:
		return m.OldVcdrLeft(ctx)
	case glaucomafinding.FieldResult:
		return m.OldResult(ctx)
	}
	return nil, fmt.Errorf("unknown GlaucomaFinding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GlaucomaFindingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case glaucomafinding.FieldEncounterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncounterID(v)
		return nil
	case glaucomafinding.FieldVcdrRight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVcdrRight(v)
		return nil
	case glaucomafinding.FieldVcdrLeft:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVcdrLeft(v)
		return nil
	case glaucomafinding.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	}
	return fmt.Errorf("unknown GlaucomaFinding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GlaucomaFindingMutation) AddedFields() []string {
	var fields []string
	if m.addvcdr_right != nil {
		fields = append(fields, glaucomafinding.FieldVcdrRight)
	}
	if m.addvcdr_left != nil {
		fields = append(fields, glaucomafinding.FieldVcdrLeft)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GlaucomaFindingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case glaucomafinding.FieldVcdrRight:
		return m.AddedVcdrRight()
	case glaucomafinding.FieldVcdrLeft:
		return m.AddedVcdrLeft()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GlaucomaFindingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case glaucomafinding.FieldVcdrRight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVcdrRight(v)
		return nil
	case glaucomafinding.FieldVcdrLeft:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVcdrLeft(v)
		return nil
	}
	return fmt.Errorf("unknown GlaucomaFinding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GlaucomaFindingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(glaucomafinding.FieldVcdrRight) {
		fields = append(fields, glaucomafinding.FieldVcdrRight)
	}
	if m.FieldCleared(glaucomafinding.FieldVcdrLeft) {
		fields = append(fields, glaucomafinding.FieldVcdrLeft)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GlaucomaFindingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GlaucomaFindingMutation) ClearField(name string) error {
	switch name {
	case glaucomafinding.FieldVcdrRight:
		m.ClearVcdrRight()
		return nil
	case glaucomafinding.FieldVcdrLeft:
		m.ClearVcdrLeft()
		return nil
	}
	return fmt.Errorf("unknown GlaucomaFinding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GlaucomaFindingMutation) ResetField(name string) error {
	switch name {
	case glaucomafinding.FieldEncounterID:
		m.ResetEncounterID()
		return nil
	case glaucomafinding.FieldVcdrRight:
		m.ResetVcdrRight()
		return nil
	case glaucomafinding.FieldVcdrLeft:
		m.ResetVcdrLeft()
		return nil
	case glaucomafinding.FieldResult:
		m.ResetResult()
		return nil
	}
	return fmt.Errorf("unknown GlaucomaFinding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GlaucomaFindingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.encounter != nil {
		edges = append(edges, glaucomafinding.EdgeEncounter)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GlaucomaFindingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case glaucomafinding.EdgeEncounter:
		if id := m.encounter; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GlaucomaFindingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GlaucomaFindingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GlaucomaFindingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedencounter {
		edges = append(edges, glaucomafinding.EdgeEncounter)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GlaucomaFindingMutation) EdgeCleared(name string) bool {
	switch name {
	case glaucomafinding.EdgeEncounter:
		return m.clearedencounter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GlaucomaFindingMutation) ClearEdge(name string) error {
	switch name {
	case glaucomafinding.EdgeEncounter:
		m.ClearEncounter()
		return nil
	}
	return fmt.Errorf("unknown GlaucomaFinding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GlaucomaFindingMutation) ResetEdge(name string) error {
	switch name {
	case glaucomafinding.EdgeEncounter:
		m.ResetEncounter()
		return nil
	}
	return fmt.Errorf("unknown GlaucomaFinding edge %s", name)
}

// RetinopathyFindingMutation represents an operation that mutates the RetinopathyFinding nodes in the graph.
type RetinopathyFindingMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	result           *string
	clearedFields    map[string]struct{}
	encounter        *uuid.UUID
	clearedencounter bool
	done             bool
	oldValue         func(context.Context) (*RetinopathyFinding, error)
	predicates       []predicate.RetinopathyFinding
}

var _ ent.Mutation = (*RetinopathyFindingMutation)(nil)

// retinopathyfindingOption allows management of the mutation configuration using functional options.
type retinopathyfindingOption func(*RetinopathyFindingMutation)

// newRetinopathyFindingMutation creates new mutation for the RetinopathyFinding entity.
func newRetinopathyFindingMutation(c config, op Op, opts ...retinopathyfindingOption) *RetinopathyFindingMutation {
	m := &RetinopathyFindingMutation{
		config:        c,
		op:            op,
		typ:           TypeRetinopathyFinding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRetinopathyFindingID sets the ID field of the mutation.
func withRetinopathyFindingID(id uuid.UUID) retinopathyfindingOption {
	return func(m *RetinopathyFindingMutation) {
		var (
			err   error
			once  sync.Once
			value *RetinopathyFinding
		)
		m.oldValue = func(ctx context.Context) (*RetinopathyFinding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RetinopathyFinding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRetinopathyFinding sets the old RetinopathyFinding of the mutation.
func withRetinopathyFinding(node *RetinopathyFinding) retinopathyfindingOption {
	return func(m *RetinopathyFindingMutation) {
		m.oldValue = func(context.Context) (*RetinopathyFinding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RetinopathyFindingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RetinopathyFindingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RetinopathyFinding entities.
func (m *RetinopathyFindingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RetinopathyFindingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RetinopathyFindingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RetinopathyFinding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEncounterID sets the "encounter_id" field.
func (m *RetinopathyFindingMutation) SetEncounterID(u uuid.UUID) {
	m.encounter = &u
}

// EncounterID returns the value of the "encounter_id" field in the mutation.
func (m *RetinopathyFindingMutation) EncounterID() (r uuid.UUID, exists bool) {
	v := m.encounter
	if v == nil {
		return
	}
	return *v, true
}

// OldEncounterID returns the old "encounter_id" field's value of the RetinopathyFinding entity.
// If the RetinopathyFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetinopathyFindingMutation) OldEncounterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncounterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncounterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncounterID: %w", err)
	}
	return oldValue.EncounterID, nil
}

// ResetEncounterID resets all changes to the "encounter_id" field.
func (m *RetinopathyFindingMutation) ResetEncounterID() {
	m.encounter = nil
}

// SetResult sets the "result" field.
func (m *RetinopathyFindingMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *RetinopathyFindingMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the RetinopathyFinding entity.
// If the RetinopathyFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetinopathyFindingMutation) OldResult(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ResetResult resets all changes to the "result" field.
func (m *RetinopathyFindingMutation) ResetResult() {
	m.result = nil
}

// ClearEncounter clears the "encounter" edge to the Encounter entity.
func (m *RetinopathyFindingMutation) ClearEncounter() {
	m.clearedencounter = true
	m.clearedFields[retinopathyfinding.FieldEncounterID] = struct{}{}
}

// EncounterCleared reports if the "encounter" edge to the Encounter entity was cleared.
func (m *RetinopathyFindingMutation) EncounterCleared() bool {
	return m.clearedencounter
}

// EncounterIDs returns the "encounter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EncounterID instead. It exists only for internal usage by the builders.
func (m *RetinopathyFindingMutation) EncounterIDs() (ids []uuid.UUID) {
	if id := m.encounter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEncounter resets all changes to the "encounter" edge.
func (m *RetinopathyFindingMutation) ResetEncounter() {
	m.encounter = nil
	m.clearedencounter = false
}

// Where appends a list predicates to the RetinopathyFindingMutation builder.
func (m *RetinopathyFindingMutation) Where(ps ...predicate.RetinopathyFinding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RetinopathyFindingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RetinopathyFindingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RetinopathyFinding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RetinopathyFindingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RetinopathyFindingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RetinopathyFinding).
func (m *RetinopathyFindingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RetinopathyFindingMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.encounter != nil {
		fields = append(fields, retinopathyfinding.FieldEncounterID)
	}
	if m.result != nil {
		fields = append(fields, retinopathyfinding.FieldResult)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RetinopathyFindingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case retinopathyfinding.FieldEncounterID:
		return m.EncounterID()
	case retinopathyfinding.FieldResult:
		return m.Result()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RetinopathyFindingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case retinopathyfinding.FieldEncounterID:
		return m.OldEncounterID(ctx)
	case retinopathyfinding.FieldResult:
		return m.OldResult(ctx)
	}
	return nil, fmt.Errorf("unknown RetinopathyFinding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RetinopathyFindingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case retinopathyfinding.FieldEncounterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncounterID(v)
		return nil
	case retinopathyfinding.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	}
	return fmt.Errorf("unknown RetinopathyFinding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RetinopathyFindingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RetinopathyFindingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RetinopathyFindingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RetinopathyFinding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RetinopathyFindingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RetinopathyFindingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RetinopathyFindingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RetinopathyFinding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RetinopathyFindingMutation) ResetField(name string) error {
	switch name {
	case retinopathyfinding.FieldEncounterID:
		m.ResetEncounterID()
		return nil
	case retinopathyfinding.FieldResult:
		m.ResetResult()
		return nil
	}
	return fmt.Errorf("unknown RetinopathyFinding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RetinopathyFindingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.encounter != nil {
		edges = append(edges, retinopathyfinding.EdgeEncounter)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RetinopathyFindingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case retinopathyfinding.EdgeEncounter:
		if id := m.encounter; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RetinopathyFindingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RetinopathyFindingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RetinopathyFindingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedencounter {
		edges = append(edges, retinopathyfinding.EdgeEncounter)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RetinopathyFindingMutation) EdgeCleared(name string) bool {
	switch name {
	case retinopathyfinding.EdgeEncounter:
		return m.clearedencounter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RetinopathyFindingMutation) ClearEdge(name string) error {
	switch name {
	case retinopathyfinding.EdgeEncounter:
		m.ClearEncounter()
		return nil
	}
	return fmt.Errorf("unknown RetinopathyFinding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RetinopathyFindingMutation) ResetEdge(name string) error {
	switch name {
	case retinopathyfinding.EdgeEncounter:
		m.ResetEncounter()
		return nil
	}
	return fmt.Errorf("unknown RetinopathyFinding edge %s", name)
}
