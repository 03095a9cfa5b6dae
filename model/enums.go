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

// CrawlState é o estado de um crawl individual.
type CrawlState string

const (
	CrawlStateRunning    CrawlState = "RUNNING"
	CrawlStateCancelling CrawlState = "CANCELLING"
	CrawlStateCancelled  CrawlState = "CANCELLED"
	CrawlStateSucceeded  CrawlState = "SUCCEEDED"
	CrawlStateFailed     CrawlState = "FAILED"
)

var crawlStateVocabulary = newVocabulary("CrawlState",
	CrawlStateRunning,
	CrawlStateCancelling,
	CrawlStateCancelled,
	CrawlStateSucceeded,
	CrawlStateFailed,
)

// ParseCrawlState decodifica um valor de wire.
func ParseCrawlState(wire string) (CrawlState, error) {
	return crawlStateVocabulary.parse(wire)
}

func (c CrawlState) String() string { return string(c) }

// Values retorna o vocabulário de CrawlState na ordem de declaração.
func (CrawlState) Values() []CrawlState { return crawlStateVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (c CrawlState) IsKnown() bool {
	return crawlStateVocabulary.contains(c)
}

func (c CrawlState) MarshalText() ([]byte, error) { return []byte(c), nil }

// UnmarshalText decodifica de forma estrita; ver ParseCrawlState.
func (c *CrawlState) UnmarshalText(text []byte) error {
	return crawlStateVocabulary.unmarshal(c, text)
}

// JobRunState é o estado corrente de uma execução de job.
type JobRunState string

const (
	JobRunStateStarting  JobRunState = "STARTING"
	JobRunStateRunning   JobRunState = "RUNNING"
	JobRunStateStopping  JobRunState = "STOPPING"
	JobRunStateStopped   JobRunState = "STOPPED"
	JobRunStateSucceeded JobRunState = "SUCCEEDED"
	JobRunStateFailed    JobRunState = "FAILED"
	JobRunStateTimeout   JobRunState = "TIMEOUT"
)

var jobRunStateVocabulary = newVocabulary("JobRunState",
	JobRunStateStarting,
	JobRunStateRunning,
	JobRunStateStopping,
	JobRunStateStopped,
	JobRunStateSucceeded,
	JobRunStateFailed,
	JobRunStateTimeout,
)

// ParseJobRunState decodifica um valor de wire.
func ParseJobRunState(wire string) (JobRunState, error) {
	return jobRunStateVocabulary.parse(wire)
}

func (j JobRunState) String() string { return string(j) }

// Values retorna o vocabulário de JobRunState na ordem de declaração.
func (JobRunState) Values() []JobRunState { return jobRunStateVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (j JobRunState) IsKnown() bool {
	return jobRunStateVocabulary.contains(j)
}

func (j JobRunState) MarshalText() ([]byte, error) { return []byte(j), nil }

// UnmarshalText decodifica de forma estrita; ver ParseJobRunState.
func (j *JobRunState) UnmarshalText(text []byte) error {
	return jobRunStateVocabulary.unmarshal(j, text)
}

// UpdateBehavior define o que o crawler faz ao detectar mudança de schema.
type UpdateBehavior string

const (
	UpdateBehaviorLog              UpdateBehavior = "LOG"
	UpdateBehaviorUpdateInDatabase UpdateBehavior = "UPDATE_IN_DATABASE"
)

var updateBehaviorVocabulary = newVocabulary("UpdateBehavior",
	UpdateBehaviorLog,
	UpdateBehaviorUpdateInDatabase,
)

// ParseUpdateBehavior decodifica um valor de wire.
func ParseUpdateBehavior(wire string) (UpdateBehavior, error) {
	return updateBehaviorVocabulary.parse(wire)
}

func (u UpdateBehavior) String() string { return string(u) }

// Values retorna o vocabulário de UpdateBehavior na ordem de declaração.
func (UpdateBehavior) Values() []UpdateBehavior { return updateBehaviorVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (u UpdateBehavior) IsKnown() bool {
	return updateBehaviorVocabulary.contains(u)
}

func (u UpdateBehavior) MarshalText() ([]byte, error) { return []byte(u), nil }

// UnmarshalText decodifica de forma estrita; ver ParseUpdateBehavior.
func (u *UpdateBehavior) UnmarshalText(text []byte) error {
	return updateBehaviorVocabulary.unmarshal(u, text)
}

// DeleteBehavior define o que o crawler faz com objetos removidos.
type DeleteBehavior string

const (
	DeleteBehaviorLog                 DeleteBehavior = "LOG"
	DeleteBehaviorDeleteFromDatabase  DeleteBehavior = "DELETE_FROM_DATABASE"
	DeleteBehaviorDeprecateInDatabase DeleteBehavior = "DEPRECATE_IN_DATABASE"
)

var deleteBehaviorVocabulary = newVocabulary("DeleteBehavior",
	DeleteBehaviorLog,
	DeleteBehaviorDeleteFromDatabase,
	DeleteBehaviorDeprecateInDatabase,
)

// ParseDeleteBehavior decodifica um valor de wire.
func ParseDeleteBehavior(wire string) (DeleteBehavior, error) {
	return deleteBehaviorVocabulary.parse(wire)
}

func (d DeleteBehavior) String() string { return string(d) }

// Values retorna o vocabulário de DeleteBehavior na ordem de declaração.
func (DeleteBehavior) Values() []DeleteBehavior { return deleteBehaviorVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (d DeleteBehavior) IsKnown() bool {
	return deleteBehaviorVocabulary.contains(d)
}

func (d DeleteBehavior) MarshalText() ([]byte, error) { return []byte(d), nil }

// UnmarshalText decodifica de forma estrita; ver ParseDeleteBehavior.
func (d *DeleteBehavior) UnmarshalText(text []byte) error {
	return deleteBehaviorVocabulary.unmarshal(d, text)
}

type CrawlerState string

const (
	CrawlerStateReady    CrawlerState = "READY"
	CrawlerStateRunning  CrawlerState = "RUNNING"
	CrawlerStateStopping CrawlerState = "STOPPING"
)

var crawlerStateVocabulary = newVocabulary("CrawlerState",
	CrawlerStateReady,
	CrawlerStateRunning,
	CrawlerStateStopping,
)

// ParseCrawlerState decodifica um valor de wire.
func ParseCrawlerState(wire string) (CrawlerState, error) {
	return crawlerStateVocabulary.parse(wire)
}

func (c CrawlerState) String() string { return string(c) }

// Values retorna o vocabulário de CrawlerState na ordem de declaração.
func (CrawlerState) Values() []CrawlerState { return crawlerStateVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (c CrawlerState) IsKnown() bool {
	return crawlerStateVocabulary.contains(c)
}

func (c CrawlerState) MarshalText() ([]byte, error) { return []byte(c), nil }

// UnmarshalText decodifica de forma estrita; ver ParseCrawlerState.
func (c *CrawlerState) UnmarshalText(text []byte) error {
	return crawlerStateVocabulary.unmarshal(c, text)
}

type LastCrawlStatus string

const (
	LastCrawlStatusSucceeded LastCrawlStatus = "SUCCEEDED"
	LastCrawlStatusCancelled LastCrawlStatus = "CANCELLED"
	LastCrawlStatusFailed    LastCrawlStatus = "FAILED"
)

var lastCrawlStatusVocabulary = newVocabulary("LastCrawlStatus",
	LastCrawlStatusSucceeded,
	LastCrawlStatusCancelled,
	LastCrawlStatusFailed,
)

// ParseLastCrawlStatus decodifica um valor de wire.
func ParseLastCrawlStatus(wire string) (LastCrawlStatus, error) {
	return lastCrawlStatusVocabulary.parse(wire)
}

func (l LastCrawlStatus) String() string { return string(l) }

// Values retorna o vocabulário de LastCrawlStatus na ordem de declaração.
func (LastCrawlStatus) Values() []LastCrawlStatus { return lastCrawlStatusVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (l LastCrawlStatus) IsKnown() bool {
	return lastCrawlStatusVocabulary.contains(l)
}

func (l LastCrawlStatus) MarshalText() ([]byte, error) { return []byte(l), nil }

// UnmarshalText decodifica de forma estrita; ver ParseLastCrawlStatus.
func (l *LastCrawlStatus) UnmarshalText(text []byte) error {
	return lastCrawlStatusVocabulary.unmarshal(l, text)
}

// WorkerType é o tipo de worker alocado para jobs e dev endpoints.
type WorkerType string

const (
	WorkerTypeStandard WorkerType = "Standard"
	WorkerTypeG1x      WorkerType = "G.1X"
	WorkerTypeG2x      WorkerType = "G.2X"
)

var workerTypeVocabulary = newVocabulary("WorkerType",
	WorkerTypeStandard,
	WorkerTypeG1x,
	WorkerTypeG2x,
)

// ParseWorkerType decodifica um valor de wire.
func ParseWorkerType(wire string) (WorkerType, error) {
	return workerTypeVocabulary.parse(wire)
}

func (w WorkerType) String() string { return string(w) }

// Values retorna o vocabulário de WorkerType na ordem de declaração.
func (WorkerType) Values() []WorkerType { return workerTypeVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (w WorkerType) IsKnown() bool {
	return workerTypeVocabulary.contains(w)
}

func (w WorkerType) MarshalText() ([]byte, error) { return []byte(w), nil }

// UnmarshalText decodifica de forma estrita; ver ParseWorkerType.
func (w *WorkerType) UnmarshalText(text []byte) error {
	return workerTypeVocabulary.unmarshal(w, text)
}

type ConnectionType string

const (
	ConnectionTypeJdbc    ConnectionType = "JDBC"
	ConnectionTypeSftp    ConnectionType = "SFTP"
	ConnectionTypeMongodb ConnectionType = "MONGODB"
	ConnectionTypeKafka   ConnectionType = "KAFKA"
)

var connectionTypeVocabulary = newVocabulary("ConnectionType",
	ConnectionTypeJdbc,
	ConnectionTypeSftp,
	ConnectionTypeMongodb,
	ConnectionTypeKafka,
)

// ParseConnectionType decodifica um valor de wire.
func ParseConnectionType(wire string) (ConnectionType, error) {
	return connectionTypeVocabulary.parse(wire)
}

func (c ConnectionType) String() string { return string(c) }

// Values retorna o vocabulário de ConnectionType na ordem de declaração.
func (ConnectionType) Values() []ConnectionType { return connectionTypeVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (c ConnectionType) IsKnown() bool {
	return connectionTypeVocabulary.contains(c)
}

func (c ConnectionType) MarshalText() ([]byte, error) { return []byte(c), nil }

// UnmarshalText decodifica de forma estrita; ver ParseConnectionType.
func (c *ConnectionType) UnmarshalText(text []byte) error {
	return connectionTypeVocabulary.unmarshal(c, text)
}

type TriggerType string

const (
	TriggerTypeScheduled   TriggerType = "SCHEDULED"
	TriggerTypeConditional TriggerType = "CONDITIONAL"
	TriggerTypeOnDemand    TriggerType = "ON_DEMAND"
)

var triggerTypeVocabulary = newVocabulary("TriggerType",
	TriggerTypeScheduled,
	TriggerTypeConditional,
	TriggerTypeOnDemand,
)

// ParseTriggerType decodifica um valor de wire.
func ParseTriggerType(wire string) (TriggerType, error) {
	return triggerTypeVocabulary.parse(wire)
}

func (t TriggerType) String() string { return string(t) }

// Values retorna o vocabulário de TriggerType na ordem de declaração.
func (TriggerType) Values() []TriggerType { return triggerTypeVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (t TriggerType) IsKnown() bool {
	return triggerTypeVocabulary.contains(t)
}

func (t TriggerType) MarshalText() ([]byte, error) { return []byte(t), nil }

// UnmarshalText decodifica de forma estrita; ver ParseTriggerType.
func (t *TriggerType) UnmarshalText(text []byte) error {
	return triggerTypeVocabulary.unmarshal(t, text)
}

type TriggerState string

const (
	TriggerStateCreating     TriggerState = "CREATING"
	TriggerStateCreated      TriggerState = "CREATED"
	TriggerStateActivating   TriggerState = "ACTIVATING"
	TriggerStateActivated    TriggerState = "ACTIVATED"
	TriggerStateDeactivating TriggerState = "DEACTIVATING"
	TriggerStateDeactivated  TriggerState = "DEACTIVATED"
	TriggerStateDeleting     TriggerState = "DELETING"
	TriggerStateUpdating     TriggerState = "UPDATING"
)

var triggerStateVocabulary = newVocabulary("TriggerState",
	TriggerStateCreating,
	TriggerStateCreated,
	TriggerStateActivating,
	TriggerStateActivated,
	TriggerStateDeactivating,
	TriggerStateDeactivated,
	TriggerStateDeleting,
	TriggerStateUpdating,
)

// ParseTriggerState decodifica um valor de wire.
func ParseTriggerState(wire string) (TriggerState, error) {
	return triggerStateVocabulary.parse(wire)
}

func (t TriggerState) String() string { return string(t) }

// Values retorna o vocabulário de TriggerState na ordem de declaração.
func (TriggerState) Values() []TriggerState { return triggerStateVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (t TriggerState) IsKnown() bool {
	return triggerStateVocabulary.contains(t)
}

func (t TriggerState) MarshalText() ([]byte, error) { return []byte(t), nil }

// UnmarshalText decodifica de forma estrita; ver ParseTriggerState.
func (t *TriggerState) UnmarshalText(text []byte) error {
	return triggerStateVocabulary.unmarshal(t, text)
}

// Logical combina as condições de um Predicate.
type Logical string

const (
	LogicalAnd Logical = "AND"
	LogicalAny Logical = "ANY"
)

var logicalVocabulary = newVocabulary("Logical",
	LogicalAnd,
	LogicalAny,
)

// ParseLogical decodifica um valor de wire.
func ParseLogical(wire string) (Logical, error) {
	return logicalVocabulary.parse(wire)
}

func (l Logical) String() string { return string(l) }

// Values retorna o vocabulário de Logical na ordem de declaração.
func (Logical) Values() []Logical { return logicalVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (l Logical) IsKnown() bool {
	return logicalVocabulary.contains(l)
}

func (l Logical) MarshalText() ([]byte, error) { return []byte(l), nil }

// UnmarshalText decodifica de forma estrita; ver ParseLogical.
func (l *Logical) UnmarshalText(text []byte) error {
	return logicalVocabulary.unmarshal(l, text)
}

type LogicalOperator string

const (
	LogicalOperatorEquals LogicalOperator = "EQUALS"
)

var logicalOperatorVocabulary = newVocabulary("LogicalOperator",
	LogicalOperatorEquals,
)

// ParseLogicalOperator decodifica um valor de wire.
func ParseLogicalOperator(wire string) (LogicalOperator, error) {
	return logicalOperatorVocabulary.parse(wire)
}

func (l LogicalOperator) String() string { return string(l) }

// Values retorna o vocabulário de LogicalOperator na ordem de declaração.
func (LogicalOperator) Values() []LogicalOperator { return logicalOperatorVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (l LogicalOperator) IsKnown() bool {
	return logicalOperatorVocabulary.contains(l)
}

func (l LogicalOperator) MarshalText() ([]byte, error) { return []byte(l), nil }

// UnmarshalText decodifica de forma estrita; ver ParseLogicalOperator.
func (l *LogicalOperator) UnmarshalText(text []byte) error {
	return logicalOperatorVocabulary.unmarshal(l, text)
}

type S3EncryptionMode string

const (
	S3EncryptionModeDisabled S3EncryptionMode = "DISABLED"
	S3EncryptionModeSseKms   S3EncryptionMode = "SSE-KMS"
	S3EncryptionModeSseS3    S3EncryptionMode = "SSE-S3"
)

var s3EncryptionModeVocabulary = newVocabulary("S3EncryptionMode",
	S3EncryptionModeDisabled,
	S3EncryptionModeSseKms,
	S3EncryptionModeSseS3,
)

// ParseS3EncryptionMode decodifica um valor de wire.
func ParseS3EncryptionMode(wire string) (S3EncryptionMode, error) {
	return s3EncryptionModeVocabulary.parse(wire)
}

func (s S3EncryptionMode) String() string { return string(s) }

// Values retorna o vocabulário de S3EncryptionMode na ordem de declaração.
func (S3EncryptionMode) Values() []S3EncryptionMode { return s3EncryptionModeVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (s S3EncryptionMode) IsKnown() bool {
	return s3EncryptionModeVocabulary.contains(s)
}

func (s S3EncryptionMode) MarshalText() ([]byte, error) { return []byte(s), nil }

// UnmarshalText decodifica de forma estrita; ver ParseS3EncryptionMode.
func (s *S3EncryptionMode) UnmarshalText(text []byte) error {
	return s3EncryptionModeVocabulary.unmarshal(s, text)
}

type CloudWatchEncryptionMode string

const (
	CloudWatchEncryptionModeDisabled CloudWatchEncryptionMode = "DISABLED"
	CloudWatchEncryptionModeSseKms   CloudWatchEncryptionMode = "SSE-KMS"
)

var cloudWatchEncryptionModeVocabulary = newVocabulary("CloudWatchEncryptionMode",
	CloudWatchEncryptionModeDisabled,
	CloudWatchEncryptionModeSseKms,
)

// ParseCloudWatchEncryptionMode decodifica um valor de wire.
func ParseCloudWatchEncryptionMode(wire string) (CloudWatchEncryptionMode, error) {
	return cloudWatchEncryptionModeVocabulary.parse(wire)
}

func (c CloudWatchEncryptionMode) String() string { return string(c) }

// Values retorna o vocabulário de CloudWatchEncryptionMode na ordem de declaração.
func (CloudWatchEncryptionMode) Values() []CloudWatchEncryptionMode { return cloudWatchEncryptionModeVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (c CloudWatchEncryptionMode) IsKnown() bool {
	return cloudWatchEncryptionModeVocabulary.contains(c)
}

func (c CloudWatchEncryptionMode) MarshalText() ([]byte, error) { return []byte(c), nil }

// UnmarshalText decodifica de forma estrita; ver ParseCloudWatchEncryptionMode.
func (c *CloudWatchEncryptionMode) UnmarshalText(text []byte) error {
	return cloudWatchEncryptionModeVocabulary.unmarshal(c, text)
}

type JobBookmarksEncryptionMode string

const (
	JobBookmarksEncryptionModeDisabled JobBookmarksEncryptionMode = "DISABLED"
	JobBookmarksEncryptionModeCseKms   JobBookmarksEncryptionMode = "CSE-KMS"
)

var jobBookmarksEncryptionModeVocabulary = newVocabulary("JobBookmarksEncryptionMode",
	JobBookmarksEncryptionModeDisabled,
	JobBookmarksEncryptionModeCseKms,
)

// ParseJobBookmarksEncryptionMode decodifica um valor de wire.
func ParseJobBookmarksEncryptionMode(wire string) (JobBookmarksEncryptionMode, error) {
	return jobBookmarksEncryptionModeVocabulary.parse(wire)
}

func (j JobBookmarksEncryptionMode) String() string { return string(j) }

// Values retorna o vocabulário de JobBookmarksEncryptionMode na ordem de declaração.
func (JobBookmarksEncryptionMode) Values() []JobBookmarksEncryptionMode { return jobBookmarksEncryptionModeVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (j JobBookmarksEncryptionMode) IsKnown() bool {
	return jobBookmarksEncryptionModeVocabulary.contains(j)
}

func (j JobBookmarksEncryptionMode) MarshalText() ([]byte, error) { return []byte(j), nil }

// UnmarshalText decodifica de forma estrita; ver ParseJobBookmarksEncryptionMode.
func (j *JobBookmarksEncryptionMode) UnmarshalText(text []byte) error {
	return jobBookmarksEncryptionModeVocabulary.unmarshal(j, text)
}

// Permission é uma permissão do Lake Formation concedida a um principal.
type Permission string

const (
	PermissionAll                Permission = "ALL"
	PermissionSelect             Permission = "SELECT"
	PermissionAlter              Permission = "ALTER"
	PermissionDrop               Permission = "DROP"
	PermissionDelete             Permission = "DELETE"
	PermissionInsert             Permission = "INSERT"
	PermissionCreateDatabase     Permission = "CREATE_DATABASE"
	PermissionCreateTable        Permission = "CREATE_TABLE"
	PermissionDataLocationAccess Permission = "DATA_LOCATION_ACCESS"
)

var permissionVocabulary = newVocabulary("Permission",
	PermissionAll,
	PermissionSelect,
	PermissionAlter,
	PermissionDrop,
	PermissionDelete,
	PermissionInsert,
	PermissionCreateDatabase,
	PermissionCreateTable,
	PermissionDataLocationAccess,
)

// ParsePermission decodifica um valor de wire.
func ParsePermission(wire string) (Permission, error) {
	return permissionVocabulary.parse(wire)
}

func (p Permission) String() string { return string(p) }

// Values retorna o vocabulário de Permission na ordem de declaração.
func (Permission) Values() []Permission { return permissionVocabulary.values() }

// IsKnown indica se o valor pertence ao vocabulário.
func (p Permission) IsKnown() bool {
	return permissionVocabulary.contains(p)
}

func (p Permission) MarshalText() ([]byte, error) { return []byte(p), nil }

// UnmarshalText decodifica de forma estrita; ver ParsePermission.
func (p *Permission) UnmarshalText(text []byte) error {
	return permissionVocabulary.unmarshal(p, text)
}
