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
	"github.com/raywall/glue-catalog-toolkit/record"
)

// Condition é uma condição de disparo sobre o estado de um job ou crawler.
type Condition struct {
	LogicalOperator LogicalOperator `json:"LogicalOperator,omitempty"`
	JobName         *string         `json:"JobName,omitempty"`
	State           JobRunState     `json:"State,omitempty"`
	CrawlerName     *string         `json:"CrawlerName,omitempty"`
	CrawlState      CrawlState      `json:"CrawlState,omitempty"`
}

func (c *Condition) SetLogicalOperator(v LogicalOperator) { c.LogicalOperator = v }
func (c *Condition) WithLogicalOperator(v LogicalOperator) *Condition {
	c.SetLogicalOperator(v)
	return c
}

func (c *Condition) SetJobName(v string) { c.JobName = &v }
func (c *Condition) WithJobName(v string) *Condition { c.SetJobName(v); return c }

func (c *Condition) SetState(v JobRunState) { c.State = v }
func (c *Condition) WithState(v JobRunState) *Condition { c.SetState(v); return c }

func (c *Condition) SetCrawlerName(v string) { c.CrawlerName = &v }
func (c *Condition) WithCrawlerName(v string) *Condition { c.SetCrawlerName(v); return c }

func (c *Condition) SetCrawlState(v CrawlState) { c.CrawlState = v }
func (c *Condition) WithCrawlState(v CrawlState) *Condition { c.SetCrawlState(v); return c }

func (c *Condition) Equal(o *Condition) bool { return record.Equal(c, o) }
func (c *Condition) Hash() int32 { return record.Hash(c) }
func (c *Condition) String() string { return record.String(c) }
func (c *Condition) Clone() *Condition { return record.Clone(c) }

type Predicate struct {
	Logical    Logical     `json:"Logical,omitempty"`
	Conditions []Condition `json:"Conditions,omitempty"`
}

func (p *Predicate) SetLogical(v Logical) { p.Logical = v }
func (p *Predicate) WithLogical(v Logical) *Predicate { p.SetLogical(v); return p }

func (p *Predicate) SetConditions(v []Condition) { p.Conditions = v }
func (p *Predicate) WithConditions(v []Condition) *Predicate { p.SetConditions(v); return p }

func (p *Predicate) Equal(o *Predicate) bool { return record.Equal(p, o) }
func (p *Predicate) Hash() int32 { return record.Hash(p) }
func (p *Predicate) String() string { return record.String(p) }
func (p *Predicate) Clone() *Predicate { return record.Clone(p) }

// Action é o que um trigger dispara: um job ou um crawler.
type Action struct {
	JobName               *string               `json:"JobName,omitempty"`
	Arguments             map[string]string     `json:"Arguments,omitempty"`
	Timeout               *int32                `json:"Timeout,omitempty"`
	SecurityConfiguration *string               `json:"SecurityConfiguration,omitempty"`
	NotificationProperty  *NotificationProperty `json:"NotificationProperty,omitempty"`
	CrawlerName           *string               `json:"CrawlerName,omitempty"`
}

func (a *Action) SetJobName(v string) { a.JobName = &v }
func (a *Action) WithJobName(v string) *Action { a.SetJobName(v); return a }

func (a *Action) SetArguments(v map[string]string) { a.Arguments = v }
func (a *Action) WithArguments(v map[string]string) *Action { a.SetArguments(v); return a }

func (a *Action) SetTimeout(v int32) { a.Timeout = &v }
func (a *Action) WithTimeout(v int32) *Action { a.SetTimeout(v); return a }

func (a *Action) SetSecurityConfiguration(v string) { a.SecurityConfiguration = &v }
func (a *Action) WithSecurityConfiguration(v string) *Action {
	a.SetSecurityConfiguration(v)
	return a
}

func (a *Action) SetNotificationProperty(v *NotificationProperty) { a.NotificationProperty = v }
func (a *Action) WithNotificationProperty(v *NotificationProperty) *Action {
	a.SetNotificationProperty(v)
	return a
}

func (a *Action) SetCrawlerName(v string) { a.CrawlerName = &v }
func (a *Action) WithCrawlerName(v string) *Action { a.SetCrawlerName(v); return a }

func (a *Action) Equal(o *Action) bool { return record.Equal(a, o) }
func (a *Action) Hash() int32 { return record.Hash(a) }
func (a *Action) String() string { return record.String(a) }
func (a *Action) Clone() *Action { return record.Clone(a) }

type Trigger struct {
	Name         *string      `json:"Name,omitempty"`
	WorkflowName *string      `json:"WorkflowName,omitempty"`
	Id           *string      `json:"Id,omitempty"`
	Type         TriggerType  `json:"Type,omitempty"`
	State        TriggerState `json:"State,omitempty"`
	Description  *string      `json:"Description,omitempty"`
	Schedule     *string      `json:"Schedule,omitempty"`
	Actions      []Action     `json:"Actions,omitempty"`
	Predicate    *Predicate   `json:"Predicate,omitempty"`
}

func (t *Trigger) SetName(v string) { t.Name = &v }
func (t *Trigger) WithName(v string) *Trigger { t.SetName(v); return t }

func (t *Trigger) SetWorkflowName(v string) { t.WorkflowName = &v }
func (t *Trigger) WithWorkflowName(v string) *Trigger { t.SetWorkflowName(v); return t }

func (t *Trigger) SetId(v string) { t.Id = &v }
func (t *Trigger) WithId(v string) *Trigger { t.SetId(v); return t }

func (t *Trigger) SetType(v TriggerType) { t.Type = v }
func (t *Trigger) WithType(v TriggerType) *Trigger { t.SetType(v); return t }

func (t *Trigger) SetState(v TriggerState) { t.State = v }
func (t *Trigger) WithState(v TriggerState) *Trigger { t.SetState(v); return t }

func (t *Trigger) SetDescription(v string) { t.Description = &v }
func (t *Trigger) WithDescription(v string) *Trigger { t.SetDescription(v); return t }

func (t *Trigger) SetSchedule(v string) { t.Schedule = &v }
func (t *Trigger) WithSchedule(v string) *Trigger { t.SetSchedule(v); return t }

func (t *Trigger) SetActions(v []Action) { t.Actions = v }
func (t *Trigger) WithActions(v []Action) *Trigger { t.SetActions(v); return t }

func (t *Trigger) SetPredicate(v *Predicate) { t.Predicate = v }
func (t *Trigger) WithPredicate(v *Predicate) *Trigger { t.SetPredicate(v); return t }

func (t *Trigger) Equal(o *Trigger) bool { return record.Equal(t, o) }
func (t *Trigger) Hash() int32 { return record.Hash(t) }
func (t *Trigger) String() string { return record.String(t) }
func (t *Trigger) Clone() *Trigger { return record.Clone(t) }
