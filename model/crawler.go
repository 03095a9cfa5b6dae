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

// DynamoDBTarget é uma tabela do DynamoDB a ser varrida por um crawler.
// Path é o nome da tabela.
type DynamoDBTarget struct {
	Path     *string  `json:"Path,omitempty"`
	ScanAll  *bool    `json:"ScanAll,omitempty"`
	ScanRate *float64 `json:"ScanRate,omitempty"`
}

func (d *DynamoDBTarget) SetPath(v string) { d.Path = &v }
func (d *DynamoDBTarget) WithPath(v string) *DynamoDBTarget { d.SetPath(v); return d }

func (d *DynamoDBTarget) SetScanAll(v bool) { d.ScanAll = &v }
func (d *DynamoDBTarget) WithScanAll(v bool) *DynamoDBTarget { d.SetScanAll(v); return d }

func (d *DynamoDBTarget) SetScanRate(v float64) { d.ScanRate = &v }
func (d *DynamoDBTarget) WithScanRate(v float64) *DynamoDBTarget { d.SetScanRate(v); return d }

func (d *DynamoDBTarget) Equal(o *DynamoDBTarget) bool { return record.Equal(d, o) }
func (d *DynamoDBTarget) Hash() int32 { return record.Hash(d) }
func (d *DynamoDBTarget) String() string { return record.String(d) }
func (d *DynamoDBTarget) Clone() *DynamoDBTarget { return record.Clone(d) }

// S3Target é um caminho do S3 a ser varrido por um crawler.
type S3Target struct {
	Path           *string  `json:"Path,omitempty"`
	Exclusions     []string `json:"Exclusions,omitempty"`
	ConnectionName *string  `json:"ConnectionName,omitempty"`
}

func (s *S3Target) SetPath(v string) { s.Path = &v }
func (s *S3Target) WithPath(v string) *S3Target { s.SetPath(v); return s }

func (s *S3Target) SetExclusions(v []string) { s.Exclusions = v }
func (s *S3Target) WithExclusions(v []string) *S3Target { s.SetExclusions(v); return s }

func (s *S3Target) SetConnectionName(v string) { s.ConnectionName = &v }
func (s *S3Target) WithConnectionName(v string) *S3Target { s.SetConnectionName(v); return s }

func (s *S3Target) Equal(o *S3Target) bool { return record.Equal(s, o) }
func (s *S3Target) Hash() int32 { return record.Hash(s) }
func (s *S3Target) String() string { return record.String(s) }
func (s *S3Target) Clone() *S3Target { return record.Clone(s) }

type CrawlerTargets struct {
	S3Targets       []S3Target       `json:"S3Targets,omitempty"`
	DynamoDBTargets []DynamoDBTarget `json:"DynamoDBTargets,omitempty"`
}

func (c *CrawlerTargets) SetS3Targets(v []S3Target) { c.S3Targets = v }
func (c *CrawlerTargets) WithS3Targets(v []S3Target) *CrawlerTargets { c.SetS3Targets(v); return c }

func (c *CrawlerTargets) SetDynamoDBTargets(v []DynamoDBTarget) { c.DynamoDBTargets = v }
func (c *CrawlerTargets) WithDynamoDBTargets(v []DynamoDBTarget) *CrawlerTargets {
	c.SetDynamoDBTargets(v)
	return c
}

func (c *CrawlerTargets) Equal(o *CrawlerTargets) bool { return record.Equal(c, o) }
func (c *CrawlerTargets) Hash() int32 { return record.Hash(c) }
func (c *CrawlerTargets) String() string { return record.String(c) }
func (c *CrawlerTargets) Clone() *CrawlerTargets { return record.Clone(c) }

// SchemaChangePolicy define o comportamento do crawler diante de mudanças de schema.
type SchemaChangePolicy struct {
	UpdateBehavior UpdateBehavior `json:"UpdateBehavior,omitempty"`
	DeleteBehavior DeleteBehavior `json:"DeleteBehavior,omitempty"`
}

func (s *SchemaChangePolicy) SetUpdateBehavior(v UpdateBehavior) { s.UpdateBehavior = v }
func (s *SchemaChangePolicy) WithUpdateBehavior(v UpdateBehavior) *SchemaChangePolicy {
	s.SetUpdateBehavior(v)
	return s
}

func (s *SchemaChangePolicy) SetDeleteBehavior(v DeleteBehavior) { s.DeleteBehavior = v }
func (s *SchemaChangePolicy) WithDeleteBehavior(v DeleteBehavior) *SchemaChangePolicy {
	s.SetDeleteBehavior(v)
	return s
}

func (s *SchemaChangePolicy) Equal(o *SchemaChangePolicy) bool { return record.Equal(s, o) }
func (s *SchemaChangePolicy) Hash() int32 { return record.Hash(s) }
func (s *SchemaChangePolicy) String() string { return record.String(s) }
func (s *SchemaChangePolicy) Clone() *SchemaChangePolicy { return record.Clone(s) }

type LastCrawlInfo struct {
	Status        LastCrawlStatus `json:"Status,omitempty"`
	ErrorMessage  *string         `json:"ErrorMessage,omitempty"`
	LogGroup      *string         `json:"LogGroup,omitempty"`
	LogStream     *string         `json:"LogStream,omitempty"`
	MessagePrefix *string         `json:"MessagePrefix,omitempty"`
	StartTime     *Timestamp      `json:"StartTime,omitempty"`
}

func (l *LastCrawlInfo) SetStatus(v LastCrawlStatus) { l.Status = v }
func (l *LastCrawlInfo) WithStatus(v LastCrawlStatus) *LastCrawlInfo { l.SetStatus(v); return l }

func (l *LastCrawlInfo) SetErrorMessage(v string) { l.ErrorMessage = &v }
func (l *LastCrawlInfo) WithErrorMessage(v string) *LastCrawlInfo { l.SetErrorMessage(v); return l }

func (l *LastCrawlInfo) SetLogGroup(v string) { l.LogGroup = &v }
func (l *LastCrawlInfo) WithLogGroup(v string) *LastCrawlInfo { l.SetLogGroup(v); return l }

func (l *LastCrawlInfo) SetLogStream(v string) { l.LogStream = &v }
func (l *LastCrawlInfo) WithLogStream(v string) *LastCrawlInfo { l.SetLogStream(v); return l }

func (l *LastCrawlInfo) SetMessagePrefix(v string) { l.MessagePrefix = &v }
func (l *LastCrawlInfo) WithMessagePrefix(v string) *LastCrawlInfo {
	l.SetMessagePrefix(v)
	return l
}

func (l *LastCrawlInfo) SetStartTime(v time.Time) { l.StartTime = NewTimestamp(v) }
func (l *LastCrawlInfo) WithStartTime(v time.Time) *LastCrawlInfo { l.SetStartTime(v); return l }

func (l *LastCrawlInfo) Equal(o *LastCrawlInfo) bool { return record.Equal(l, o) }
func (l *LastCrawlInfo) Hash() int32 { return record.Hash(l) }
func (l *LastCrawlInfo) String() string { return record.String(l) }
func (l *LastCrawlInfo) Clone() *LastCrawlInfo { return record.Clone(l) }

// Crawl é uma execução individual de um crawler.
type Crawl struct {
	State        CrawlState `json:"State,omitempty"`
	StartedOn    *Timestamp `json:"StartedOn,omitempty"`
	CompletedOn  *Timestamp `json:"CompletedOn,omitempty"`
	ErrorMessage *string    `json:"ErrorMessage,omitempty"`
	LogGroup     *string    `json:"LogGroup,omitempty"`
	LogStream    *string    `json:"LogStream,omitempty"`
}

func (c *Crawl) SetState(v CrawlState) { c.State = v }
func (c *Crawl) WithState(v CrawlState) *Crawl { c.SetState(v); return c }

func (c *Crawl) SetStartedOn(v time.Time) { c.StartedOn = NewTimestamp(v) }
func (c *Crawl) WithStartedOn(v time.Time) *Crawl { c.SetStartedOn(v); return c }

func (c *Crawl) SetCompletedOn(v time.Time) { c.CompletedOn = NewTimestamp(v) }
func (c *Crawl) WithCompletedOn(v time.Time) *Crawl { c.SetCompletedOn(v); return c }

func (c *Crawl) SetErrorMessage(v string) { c.ErrorMessage = &v }
func (c *Crawl) WithErrorMessage(v string) *Crawl { c.SetErrorMessage(v); return c }

func (c *Crawl) SetLogGroup(v string) { c.LogGroup = &v }
func (c *Crawl) WithLogGroup(v string) *Crawl { c.SetLogGroup(v); return c }

func (c *Crawl) SetLogStream(v string) { c.LogStream = &v }
func (c *Crawl) WithLogStream(v string) *Crawl { c.SetLogStream(v); return c }

func (c *Crawl) Equal(o *Crawl) bool { return record.Equal(c, o) }
func (c *Crawl) Hash() int32 { return record.Hash(c) }
func (c *Crawl) String() string { return record.String(c) }
func (c *Crawl) Clone() *Crawl { return record.Clone(c) }

// Crawler descreve um crawler: fontes, banco de destino e política de schema.
type Crawler struct {
	Name                         *string             `json:"Name,omitempty"`
	Role                         *string             `json:"Role,omitempty"`
	Targets                      *CrawlerTargets     `json:"Targets,omitempty"`
	DatabaseName                 *string             `json:"DatabaseName,omitempty"`
	Description                  *string             `json:"Description,omitempty"`
	Classifiers                  []string            `json:"Classifiers,omitempty"`
	SchemaChangePolicy           *SchemaChangePolicy `json:"SchemaChangePolicy,omitempty"`
	State                        CrawlerState        `json:"State,omitempty"`
	TablePrefix                  *string             `json:"TablePrefix,omitempty"`
	Schedule                     *string             `json:"Schedule,omitempty"`
	CrawlElapsedTime             *int64              `json:"CrawlElapsedTime,omitempty"`
	CreationTime                 *Timestamp          `json:"CreationTime,omitempty"`
	LastUpdated                  *Timestamp          `json:"LastUpdated,omitempty"`
	LastCrawl                    *LastCrawlInfo      `json:"LastCrawl,omitempty"`
	Version                      *int64              `json:"Version,omitempty"`
	Configuration                *string             `json:"Configuration,omitempty"`
	CrawlerSecurityConfiguration *string             `json:"CrawlerSecurityConfiguration,omitempty"`
}

func (c *Crawler) SetName(v string) { c.Name = &v }
func (c *Crawler) WithName(v string) *Crawler { c.SetName(v); return c }

func (c *Crawler) SetRole(v string) { c.Role = &v }
func (c *Crawler) WithRole(v string) *Crawler { c.SetRole(v); return c }

func (c *Crawler) SetTargets(v *CrawlerTargets) { c.Targets = v }
func (c *Crawler) WithTargets(v *CrawlerTargets) *Crawler { c.SetTargets(v); return c }

func (c *Crawler) SetDatabaseName(v string) { c.DatabaseName = &v }
func (c *Crawler) WithDatabaseName(v string) *Crawler { c.SetDatabaseName(v); return c }

func (c *Crawler) SetDescription(v string) { c.Description = &v }
func (c *Crawler) WithDescription(v string) *Crawler { c.SetDescription(v); return c }

func (c *Crawler) SetClassifiers(v []string) { c.Classifiers = v }
func (c *Crawler) WithClassifiers(v []string) *Crawler { c.SetClassifiers(v); return c }

func (c *Crawler) SetSchemaChangePolicy(v *SchemaChangePolicy) { c.SchemaChangePolicy = v }
func (c *Crawler) WithSchemaChangePolicy(v *SchemaChangePolicy) *Crawler {
	c.SetSchemaChangePolicy(v)
	return c
}

func (c *Crawler) SetState(v CrawlerState) { c.State = v }
func (c *Crawler) WithState(v CrawlerState) *Crawler { c.SetState(v); return c }

func (c *Crawler) SetTablePrefix(v string) { c.TablePrefix = &v }
func (c *Crawler) WithTablePrefix(v string) *Crawler { c.SetTablePrefix(v); return c }

func (c *Crawler) SetSchedule(v string) { c.Schedule = &v }
func (c *Crawler) WithSchedule(v string) *Crawler { c.SetSchedule(v); return c }

func (c *Crawler) SetCrawlElapsedTime(v int64) { c.CrawlElapsedTime = &v }
func (c *Crawler) WithCrawlElapsedTime(v int64) *Crawler { c.SetCrawlElapsedTime(v); return c }

func (c *Crawler) SetCreationTime(v time.Time) { c.CreationTime = NewTimestamp(v) }
func (c *Crawler) WithCreationTime(v time.Time) *Crawler { c.SetCreationTime(v); return c }

func (c *Crawler) SetLastUpdated(v time.Time) { c.LastUpdated = NewTimestamp(v) }
func (c *Crawler) WithLastUpdated(v time.Time) *Crawler { c.SetLastUpdated(v); return c }

func (c *Crawler) SetLastCrawl(v *LastCrawlInfo) { c.LastCrawl = v }
func (c *Crawler) WithLastCrawl(v *LastCrawlInfo) *Crawler { c.SetLastCrawl(v); return c }

func (c *Crawler) SetVersion(v int64) { c.Version = &v }
func (c *Crawler) WithVersion(v int64) *Crawler { c.SetVersion(v); return c }

func (c *Crawler) SetConfiguration(v string) { c.Configuration = &v }
func (c *Crawler) WithConfiguration(v string) *Crawler { c.SetConfiguration(v); return c }

func (c *Crawler) SetCrawlerSecurityConfiguration(v string) { c.CrawlerSecurityConfiguration = &v }
func (c *Crawler) WithCrawlerSecurityConfiguration(v string) *Crawler {
	c.SetCrawlerSecurityConfiguration(v)
	return c
}

func (c *Crawler) Equal(o *Crawler) bool { return record.Equal(c, o) }
func (c *Crawler) Hash() int32 { return record.Hash(c) }
func (c *Crawler) String() string { return record.String(c) }
func (c *Crawler) Clone() *Crawler { return record.Clone(c) }
