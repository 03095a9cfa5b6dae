// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"time"

	"github.com/raywall/glue-catalog-toolkit/record"
)

type S3Encryption struct {
	S3EncryptionMode S3EncryptionMode `json:"S3EncryptionMode,omitempty"`
	KmsKeyArn        *string          `json:"KmsKeyArn,omitempty"`
}

func (s *S3Encryption) SetS3EncryptionMode(v S3EncryptionMode) { s.S3EncryptionMode = v }
func (s *S3Encryption) WithS3EncryptionMode(v S3EncryptionMode) *S3Encryption {
	s.SetS3EncryptionMode(v)
	return s
}

func (s *S3Encryption) SetKmsKeyArn(v string) { s.KmsKeyArn = &v }
func (s *S3Encryption) WithKmsKeyArn(v string) *S3Encryption { s.SetKmsKeyArn(v); return s }

func (s *S3Encryption) Equal(o *S3Encryption) bool { return record.Equal(s, o) }
func (s *S3Encryption) Hash() int32 { return record.Hash(s) }
func (s *S3Encryption) String() string { return record.String(s) }
func (s *S3Encryption) Clone() *S3Encryption { return record.Clone(s) }

type CloudWatchEncryption struct {
	CloudWatchEncryptionMode CloudWatchEncryptionMode `json:"CloudWatchEncryptionMode,omitempty"`
	KmsKeyArn                *string                  `json:"KmsKeyArn,omitempty"`
}

func (c *CloudWatchEncryption) SetCloudWatchEncryptionMode(v CloudWatchEncryptionMode) {
	c.CloudWatchEncryptionMode = v
}
func (c *CloudWatchEncryption) WithCloudWatchEncryptionMode(v CloudWatchEncryptionMode) *CloudWatchEncryption {
	c.SetCloudWatchEncryptionMode(v)
	return c
}

func (c *CloudWatchEncryption) SetKmsKeyArn(v string) { c.KmsKeyArn = &v }
func (c *CloudWatchEncryption) WithKmsKeyArn(v string) *CloudWatchEncryption {
	c.SetKmsKeyArn(v)
	return c
}

func (c *CloudWatchEncryption) Equal(o *CloudWatchEncryption) bool { return record.Equal(c, o) }
func (c *CloudWatchEncryption) Hash() int32 { return record.Hash(c) }
func (c *CloudWatchEncryption) String() string { return record.String(c) }
func (c *CloudWatchEncryption) Clone() *CloudWatchEncryption { return record.Clone(c) }

type JobBookmarksEncryption struct {
	JobBookmarksEncryptionMode JobBookmarksEncryptionMode `json:"JobBookmarksEncryptionMode,omitempty"`
	KmsKeyArn                  *string                    `json:"KmsKeyArn,omitempty"`
}

func (j *JobBookmarksEncryption) SetJobBookmarksEncryptionMode(v JobBookmarksEncryptionMode) {
	j.JobBookmarksEncryptionMode = v
}
func (j *JobBookmarksEncryption) WithJobBookmarksEncryptionMode(v JobBookmarksEncryptionMode) *JobBookmarksEncryption {
	j.SetJobBookmarksEncryptionMode(v)
	return j
}

func (j *JobBookmarksEncryption) SetKmsKeyArn(v string) { j.KmsKeyArn = &v }
func (j *JobBookmarksEncryption) WithKmsKeyArn(v string) *JobBookmarksEncryption {
	j.SetKmsKeyArn(v)
	return j
}

func (j *JobBookmarksEncryption) Equal(o *JobBookmarksEncryption) bool { return record.Equal(j, o) }
func (j *JobBookmarksEncryption) Hash() int32 { return record.Hash(j) }
func (j *JobBookmarksEncryption) String() string { return record.String(j) }
func (j *JobBookmarksEncryption) Clone() *JobBookmarksEncryption { return record.Clone(j) }

type EncryptionConfiguration struct {
	S3Encryption           []S3Encryption          `json:"S3Encryption,omitempty"`
	CloudWatchEncryption   *CloudWatchEncryption   `json:"CloudWatchEncryption,omitempty"`
	JobBookmarksEncryption *JobBookmarksEncryption `json:"JobBookmarksEncryption,omitempty"`
}

func (e *EncryptionConfiguration) SetS3Encryption(v []S3Encryption) { e.S3Encryption = v }
func (e *EncryptionConfiguration) WithS3Encryption(v []S3Encryption) *EncryptionConfiguration {
	e.SetS3Encryption(v)
	return e
}

func (e *EncryptionConfiguration) SetCloudWatchEncryption(v *CloudWatchEncryption) {
	e.CloudWatchEncryption = v
}
func (e *EncryptionConfiguration) WithCloudWatchEncryption(v *CloudWatchEncryption) *EncryptionConfiguration {
	e.SetCloudWatchEncryption(v)
	return e
}

func (e *EncryptionConfiguration) SetJobBookmarksEncryption(v *JobBookmarksEncryption) {
	e.JobBookmarksEncryption = v
}
func (e *EncryptionConfiguration) WithJobBookmarksEncryption(v *JobBookmarksEncryption) *EncryptionConfiguration {
	e.SetJobBookmarksEncryption(v)
	return e
}

func (e *EncryptionConfiguration) Equal(o *EncryptionConfiguration) bool {
	return record.Equal(e, o)
}
func (e *EncryptionConfiguration) Hash() int32 { return record.Hash(e) }
func (e *EncryptionConfiguration) String() string { return record.String(e) }
func (e *EncryptionConfiguration) Clone() *EncryptionConfiguration { return record.Clone(e) }

// SecurityConfiguration agrupa as configurações de criptografia usadas por
// jobs, crawlers e dev endpoints.
type SecurityConfiguration struct {
	Name                    *string                  `json:"Name,omitempty"`
	CreatedTimeStamp        *Timestamp               `json:"CreatedTimeStamp,omitempty"`
	EncryptionConfiguration *EncryptionConfiguration `json:"EncryptionConfiguration,omitempty"`
}

func (s *SecurityConfiguration) SetName(v string) { s.Name = &v }
func (s *SecurityConfiguration) WithName(v string) *SecurityConfiguration { s.SetName(v); return s }

func (s *SecurityConfiguration) SetCreatedTimeStamp(v time.Time) {
	s.CreatedTimeStamp = NewTimestamp(v)
}
func (s *SecurityConfiguration) WithCreatedTimeStamp(v time.Time) *SecurityConfiguration {
	s.SetCreatedTimeStamp(v)
	return s
}

func (s *SecurityConfiguration) SetEncryptionConfiguration(v *EncryptionConfiguration) {
	s.EncryptionConfiguration = v
}
func (s *SecurityConfiguration) WithEncryptionConfiguration(v *EncryptionConfiguration) *SecurityConfiguration {
	s.SetEncryptionConfiguration(v)
	return s
}

func (s *SecurityConfiguration) Equal(o *SecurityConfiguration) bool { return record.Equal(s, o) }
func (s *SecurityConfiguration) Hash() int32 { return record.Hash(s) }
func (s *SecurityConfiguration) String() string { return record.String(s) }
func (s *SecurityConfiguration) Clone() *SecurityConfiguration { return record.Clone(s) }
