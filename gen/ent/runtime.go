// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/campushire/placement-portal/db/ent/schema"
	"github.com/campushire/placement-portal/gen/ent/parsejob"
	"github.com/campushire/placement-portal/gen/ent/posting"
	"github.com/campushire/placement-portal/gen/ent/profile"
	"github.com/campushire/placement-portal/gen/ent/upload"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	parsejobFields := schema.ParseJob{}.Fields()
	_ = parsejobFields
	// parsejobDescFormat is the schema descriptor for format field.
	parsejobDescFormat := parsejobFields[4].Descriptor()
	// parsejob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	parsejob.FormatValidator = func() func(string) error {
		validators := parsejobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescStartedAt is the schema descriptor for started_at field.
	parsejobDescStartedAt := parsejobFields[5].Descriptor()
	// parsejob.DefaultStartedAt holds the default value on creation for the started_at field.
	parsejob.DefaultStartedAt = parsejobDescStartedAt.Default.(func() time.Time)
	// parsejobDescStatus is the schema descriptor for status field.
	parsejobDescStatus := parsejobFields[7].Descriptor()
	// parsejob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	parsejob.StatusValidator = func() func(string) error {
		validators := parsejobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescNeedsReview is the schema descriptor for needs_review field.
	parsejobDescNeedsReview := parsejobFields[9].Descriptor()
	// parsejob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	parsejob.DefaultNeedsReview = parsejobDescNeedsReview.Default.(bool)
	// parsejobDescID is the schema descriptor for id field.
	parsejobDescID := parsejobFields[0].Descriptor()
	// parsejob.DefaultID holds the default value on creation for the id field.
	parsejob.DefaultID = parsejobDescID.Default.(func() uuid.UUID)
	postingFields := schema.Posting{}.Fields()
	_ = postingFields
	// postingDescTitle is the schema descriptor for title field.
	postingDescTitle := postingFields[2].Descriptor()
	// posting.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	posting.TitleValidator = postingDescTitle.Validators[0].(func(string) error)
	// postingDescCompanyName is the schema descriptor for company_name field.
	postingDescCompanyName := postingFields[3].Descriptor()
	// posting.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	posting.CompanyNameValidator = postingDescCompanyName.Validators[0].(func(string) error)
	// postingDescJobType is the schema descriptor for job_type field.
	postingDescJobType := postingFields[11].Descriptor()
	// posting.JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	posting.JobTypeValidator = func() func(string) error {
		validators := postingDescJobType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(job_type string) error {
			for _, fn := range fns {
				if err := fn(job_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// postingDescWorkMode is the schema descriptor for work_mode field.
	postingDescWorkMode := postingFields[12].Descriptor()
	// posting.WorkModeValidator is a validator for the "work_mode" field. It is called by the builders before save.
	posting.WorkModeValidator = func() func(string) error {
		validators := postingDescWorkMode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(work_mode string) error {
			for _, fn := range fns {
				if err := fn(work_mode); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// postingDescStatus is the schema descriptor for status field.
	postingDescStatus := postingFields[14].Descriptor()
	// posting.DefaultStatus holds the default value on creation for the status field.
	posting.DefaultStatus = postingDescStatus.Default.(string)
	// posting.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	posting.StatusValidator = func() func(string) error {
		validators := postingDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// postingDescCreatedAt is the schema descriptor for created_at field.
	postingDescCreatedAt := postingFields[15].Descriptor()
	// posting.DefaultCreatedAt holds the default value on creation for the created_at field.
	posting.DefaultCreatedAt = postingDescCreatedAt.Default.(func() time.Time)
	// postingDescUpdatedAt is the schema descriptor for updated_at field.
	postingDescUpdatedAt := postingFields[16].Descriptor()
	// posting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	posting.DefaultUpdatedAt = postingDescUpdatedAt.Default.(func() time.Time)
	// posting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	posting.UpdateDefaultUpdatedAt = postingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// postingDescID is the schema descriptor for id field.
	postingDescID := postingFields[0].Descriptor()
	// posting.DefaultID holds the default value on creation for the id field.
	posting.DefaultID = postingDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescCompanyName is the schema descriptor for company_name field.
	profileDescCompanyName := profileFields[2].Descriptor()
	// profile.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	profile.CompanyNameValidator = profileDescCompanyName.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[4].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[5].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	uploadFields := schema.Upload{}.Fields()
	_ = uploadFields
	// uploadDescSourcePath is the schema descriptor for source_path field.
	uploadDescSourcePath := uploadFields[2].Descriptor()
	// upload.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	upload.SourcePathValidator = uploadDescSourcePath.Validators[0].(func(string) error)
	// uploadDescContentHash is the schema descriptor for content_hash field.
	uploadDescContentHash := uploadFields[3].Descriptor()
	// upload.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	upload.ContentHashValidator = uploadDescContentHash.Validators[0].(func([]byte) error)
	// uploadDescFilename is the schema descriptor for filename field.
	uploadDescFilename := uploadFields[4].Descriptor()
	// upload.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	upload.FilenameValidator = uploadDescFilename.Validators[0].(func(string) error)
	// uploadDescFileExt is the schema descriptor for file_ext field.
	uploadDescFileExt := uploadFields[5].Descriptor()
	// upload.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	upload.FileExtValidator = uploadDescFileExt.Validators[0].(func(string) error)
	// uploadDescContentType is the schema descriptor for content_type field.
	uploadDescContentType := uploadFields[6].Descriptor()
	// upload.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	upload.ContentTypeValidator = uploadDescContentType.Validators[0].(func(string) error)
	// uploadDescFileSize is the schema descriptor for file_size field.
	uploadDescFileSize := uploadFields[7].Descriptor()
	// upload.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	upload.FileSizeValidator = uploadDescFileSize.Validators[0].(func(int) error)
	// uploadDescUploadedAt is the schema descriptor for uploaded_at field.
	uploadDescUploadedAt := uploadFields[8].Descriptor()
	// upload.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	upload.DefaultUploadedAt = uploadDescUploadedAt.Default.(func() time.Time)
	// uploadDescID is the schema descriptor for id field.
	uploadDescID := uploadFields[0].Descriptor()
	// upload.DefaultID holds the default value on creation for the id field.
	upload.DefaultID = uploadDescID.Default.(func() uuid.UUID)
}
