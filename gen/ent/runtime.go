// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/db/ent/schema"
	"github.com/retinalab/screening-tracker/gen/ent/archive"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
	"github.com/retinalab/screening-tracker/gen/ent/encounterfile"
	"github.com/retinalab/screening-tracker/gen/ent/glaucomafinding"
	"github.com/retinalab/screening-tracker/gen/ent/retinopathyfinding"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	archiveFields := schema.Archive{}.Fields()
	_ = archiveFields
	// archiveDescFilename is the schema descriptor for filename field.
	archiveDescFilename := archiveFields[1].Descriptor()
	// archive.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	archive.FilenameValidator = archiveDescFilename.Validators[0].(func(string) error)
	// archiveDescContentHash is the schema descriptor for content_hash field.
	archiveDescContentHash := archiveFields[2].Descriptor()
	// archive.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	archive.ContentHashValidator = archiveDescContentHash.Validators[0].(func(string) error)
	// archiveDescProcessedAt is the schema descriptor for processed_at field.
	archiveDescProcessedAt := archiveFields[3].Descriptor()
	// archive.DefaultProcessedAt holds the default value on creation for the processed_at field.
	archive.DefaultProcessedAt = archiveDescProcessedAt.Default.(func() time.Time)
	// archiveDescID is the schema descriptor for id field.
	archiveDescID := archiveFields[0].Descriptor()
	// archive.DefaultID holds the default value on creation for the id field.
	archive.DefaultID = archiveDescID.Default.(func() uuid.UUID)
	encounterFields := schema.Encounter{}.Fields()
	_ = encounterFields
	// encounterDescPatientName is the schema descriptor for patient_name field.
	encounterDescPatientName := encounterFields[2].Descriptor()
	// encounter.PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	encounter.PatientNameValidator = encounterDescPatientName.Validators[0].(func(string) error)
	// encounterDescPatientID is the schema descriptor for patient_id field.
	encounterDescPatientID := encounterFields[3].Descriptor()
	// encounter.PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	encounter.PatientIDValidator = encounterDescPatientID.Validators[0].(func(string) error)
	// encounterDescCaptureDate is the schema descriptor for capture_date field.
	encounterDescCaptureDate := encounterFields[4].Descriptor()
	// encounter.CaptureDateValidator is a validator for the "capture_date" field. It is called by the builders before save.
	encounter.CaptureDateValidator = encounterDescCaptureDate.Validators[0].(func(string) error)
	// encounterDescID is the schema descriptor for id field.
	encounterDescID := encounterFields[0].Descriptor()
	// encounter.DefaultID holds the default value on creation for the id field.
	encounter.DefaultID = encounterDescID.Default.(func() uuid.UUID)
	encounterfileFields := schema.EncounterFile{}.Fields()
	_ = encounterfileFields
	// encounterfileDescFilename is the schema descriptor for filename field.
	encounterfileDescFilename := encounterfileFields[2].Descriptor()
	// encounterfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	encounterfile.FilenameValidator = encounterfileDescFilename.Validators[0].(func(string) error)
	// encounterfileDescFileType is the schema descriptor for file_type field.
	encounterfileDescFileType := encounterfileFields[3].Descriptor()
	// encounterfile.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	encounterfile.FileTypeValidator = func() func(string) error {
		validators := encounterfileDescFileType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_type string) error {
			for _, fn := range fns {
				if err := fn(file_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// encounterfileDescOcrProcessed is the schema descriptor for ocr_processed field.
	encounterfileDescOcrProcessed := encounterfileFields[4].Descriptor()
	// encounterfile.DefaultOcrProcessed holds the default value on creation for the ocr_processed field.
	encounterfile.DefaultOcrProcessed = encounterfileDescOcrProcessed.Default.(bool)
	// encounterfileDescID is the schema descriptor for id field.
	encounterfileDescID := encounterfileFields[0].Descriptor()
	// encounterfile.DefaultID holds the default value on creation for the id field.
	encounterfile.DefaultID = encounterfileDescID.Default.(func() uuid.UUID)
	glaucomafindingFields := schema.GlaucomaFinding{}.Fields()
	_ = glaucomafindingFields
	// glaucomafindingDescID is the schema descriptor for id field.
	glaucomafindingDescID := glaucomafindingFields[0].Descriptor()
	// glaucomafinding.DefaultID holds the default value on creation for the id field.
	glaucomafinding.DefaultID = glaucomafindingDescID.Default.(func() uuid.UUID)
	retinopathyfindingFields := schema.RetinopathyFinding{}.Fields()
	_ = retinopathyfindingFields
	// retinopathyfindingDescID is the schema descriptor for id field.
	retinopathyfindingDescID := retinopathyfindingFields[0].Descriptor()
	// retinopathyfinding.DefaultID holds the default value on creation for the id field.
	retinopathyfinding.DefaultID = retinopathyfindingDescID.Default.(func() uuid.UUID)
}
