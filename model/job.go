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

type Predecessor struct {
	JobName *string `json:"JobName,omitempty"`
	RunId   *string `json:"RunId,omitempty"`
}

func (p *Predecessor) SetJobName(v string) { p.JobName = &v }
func (p *Predecessor) WithJobName(v string) *Predecessor { p.SetJobName(v); return p }

func (p *Predecessor) SetRunId(v string) { p.RunId = &v }
func (p *Predecessor) WithRunId(v string) *Predecessor { p.SetRunId(v); return p }

func (p *Predecessor) Equal(o *Predecessor) bool { return record.Equal(p, o) }
func (p *Predecessor) Hash() int32 { return record.Hash(p) }
func (p *Predecessor) String() string { return record.String(p) }
func (p *Predecessor) Clone() *Predecessor { return record.Clone(p) }

type NotificationProperty struct {
	NotifyDelayAfter *int32 `json:"NotifyDelayAfter,omitempty"`
}

func (n *NotificationProperty) SetNotifyDelayAfter(v int32) { n.NotifyDelayAfter = &v }
func (n *NotificationProperty) WithNotifyDelayAfter(v int32) *NotificationProperty {
	n.SetNotifyDelayAfter(v)
	return n
}

func (n *NotificationProperty) Equal(o *NotificationProperty) bool { return record.Equal(n, o) }
func (n *NotificationProperty) Hash() int32 { return record.Hash(n) }
func (n *NotificationProperty) String() string { return record.String(n) }
func (n *NotificationProperty) Clone() *NotificationProperty { return record.Clone(n) }

// JobRun contém as informações de uma execução de job.
type JobRun struct {
	Id                    *string               `json:"Id,omitempty"`
	Attempt               *int32                `json:"Attempt,omitempty"`
	PreviousRunId         *string               `json:"PreviousRunId,omitempty"`
	TriggerName           *string               `json:"TriggerName,omitempty"`
	JobName               *string               `json:"JobName,omitempty"`
	StartedOn             *Timestamp            `json:"StartedOn,omitempty"`
	LastModifiedOn        *Timestamp            `json:"LastModifiedOn,omitempty"`
	CompletedOn           *Timestamp            `json:"CompletedOn,omitempty"`
	JobRunState           JobRunState           `json:"JobRunState,omitempty"`
	Arguments             map[string]string     `json:"Arguments,omitempty"`
	ErrorMessage          *string               `json:"ErrorMessage,omitempty"`
	PredecessorRuns       []Predecessor         `json:"PredecessorRuns,omitempty"`
	ExecutionTime         *int32                `json:"ExecutionTime,omitempty"`
	Timeout               *int32                `json:"Timeout,omitempty"`
	MaxCapacity           *float64              `json:"MaxCapacity,omitempty"`
	WorkerType            WorkerType            `json:"WorkerType,omitempty"`
	NumberOfWorkers       *int32                `json:"NumberOfWorkers,omitempty"`
	SecurityConfiguration *string               `json:"SecurityConfiguration,omitempty"`
	LogGroupName          *string               `json:"LogGroupName,omitempty"`
	NotificationProperty  *NotificationProperty `json:"NotificationProperty,omitempty"`
	GlueVersion           *string               `json:"GlueVersion,omitempty"`
}

func (j *JobRun) SetId(v string) { j.Id = &v }
func (j *JobRun) WithId(v string) *JobRun { j.SetId(v); return j }

func (j *JobRun) SetAttempt(v int32) { j.Attempt = &v }
func (j *JobRun) WithAttempt(v int32) *JobRun { j.SetAttempt(v); return j }

func (j *JobRun) SetPreviousRunId(v string) { j.PreviousRunId = &v }
func (j *JobRun) WithPreviousRunId(v string) *JobRun { j.SetPreviousRunId(v); return j }

func (j *JobRun) SetTriggerName(v string) { j.TriggerName = &v }
func (j *JobRun) WithTriggerName(v string) *JobRun { j.SetTriggerName(v); return j }

func (j *JobRun) SetJobName(v string) { j.JobName = &v }
func (j *JobRun) WithJobName(v string) *JobRun { j.SetJobName(v); return j }

func (j *JobRun) SetStartedOn(v time.Time) { j.StartedOn = NewTimestamp(v) }
func (j *JobRun) WithStartedOn(v time.Time) *JobRun { j.SetStartedOn(v); return j }

func (j *JobRun) SetLastModifiedOn(v time.Time) { j.LastModifiedOn = NewTimestamp(v) }
func (j *JobRun) WithLastModifiedOn(v time.Time) *JobRun { j.SetLastModifiedOn(v); return j }

func (j *JobRun) SetCompletedOn(v time.Time) { j.CompletedOn = NewTimestamp(v) }
func (j *JobRun) WithCompletedOn(v time.Time) *JobRun { j.SetCompletedOn(v); return j }

func (j *JobRun) SetJobRunState(v JobRunState) { j.JobRunState = v }
func (j *JobRun) WithJobRunState(v JobRunState) *JobRun { j.SetJobRunState(v); return j }

func (j *JobRun) SetArguments(v map[string]string) { j.Arguments = v }
func (j *JobRun) WithArguments(v map[string]string) *JobRun { j.SetArguments(v); return j }

func (j *JobRun) SetErrorMessage(v string) { j.ErrorMessage = &v }
func (j *JobRun) WithErrorMessage(v string) *JobRun { j.SetErrorMessage(v); return j }

func (j *JobRun) SetPredecessorRuns(v []Predecessor) { j.PredecessorRuns = v }
func (j *JobRun) WithPredecessorRuns(v []Predecessor) *JobRun { j.SetPredecessorRuns(v); return j }

func (j *JobRun) SetExecutionTime(v int32) { j.ExecutionTime = &v }
func (j *JobRun) WithExecutionTime(v int32) *JobRun { j.SetExecutionTime(v); return j }

func (j *JobRun) SetTimeout(v int32) { j.Timeout = &v }
func (j *JobRun) WithTimeout(v int32) *JobRun { j.SetTimeout(v); return j }

func (j *JobRun) SetMaxCapacity(v float64) { j.MaxCapacity = &v }
func (j *JobRun) WithMaxCapacity(v float64) *JobRun { j.SetMaxCapacity(v); return j }

func (j *JobRun) SetWorkerType(v WorkerType) { j.WorkerType = v }
func (j *JobRun) WithWorkerType(v WorkerType) *JobRun { j.SetWorkerType(v); return j }

func (j *JobRun) SetNumberOfWorkers(v int32) { j.NumberOfWorkers = &v }
func (j *JobRun) WithNumberOfWorkers(v int32) *JobRun { j.SetNumberOfWorkers(v); return j }

func (j *JobRun) SetSecurityConfiguration(v string) { j.SecurityConfiguration = &v }
func (j *JobRun) WithSecurityConfiguration(v string) *JobRun {
	j.SetSecurityConfiguration(v)
	return j
}

func (j *JobRun) SetLogGroupName(v string) { j.LogGroupName = &v }
func (j *JobRun) WithLogGroupName(v string) *JobRun { j.SetLogGroupName(v); return j }

func (j *JobRun) SetNotificationProperty(v *NotificationProperty) { j.NotificationProperty = v }
func (j *JobRun) WithNotificationProperty(v *NotificationProperty) *JobRun {
	j.SetNotificationProperty(v)
	return j
}

func (j *JobRun) SetGlueVersion(v string) { j.GlueVersion = &v }
func (j *JobRun) WithGlueVersion(v string) *JobRun { j.SetGlueVersion(v); return j }

func (j *JobRun) Equal(o *JobRun) bool { return record.Equal(j, o) }
func (j *JobRun) Hash() int32 { return record.Hash(j) }
func (j *JobRun) String() string { return record.String(j) }
func (j *JobRun) Clone() *JobRun { return record.Clone(j) }
