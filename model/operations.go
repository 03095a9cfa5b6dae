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

type GetDatabaseRequest struct {
	CatalogId *string `json:"CatalogId,omitempty" validate:"omitempty,min=1,max=255"`
	Name      *string `json:"Name,omitempty" validate:"required,min=1,max=255"`
}

func (g *GetDatabaseRequest) SetCatalogId(v string) { g.CatalogId = &v }
func (g *GetDatabaseRequest) WithCatalogId(v string) *GetDatabaseRequest {
	g.SetCatalogId(v)
	return g
}

func (g *GetDatabaseRequest) SetName(v string) { g.Name = &v }
func (g *GetDatabaseRequest) WithName(v string) *GetDatabaseRequest { g.SetName(v); return g }

func (g *GetDatabaseRequest) Equal(o *GetDatabaseRequest) bool { return record.Equal(g, o) }
func (g *GetDatabaseRequest) Hash() int32 { return record.Hash(g) }
func (g *GetDatabaseRequest) String() string { return record.String(g) }
func (g *GetDatabaseRequest) Clone() *GetDatabaseRequest { return record.Clone(g) }

type GetDatabaseResult struct {
	Database *Database `json:"Database,omitempty"`
}

func (g *GetDatabaseResult) SetDatabase(v *Database) { g.Database = v }
func (g *GetDatabaseResult) WithDatabase(v *Database) *GetDatabaseResult {
	g.SetDatabase(v)
	return g
}

func (g *GetDatabaseResult) Equal(o *GetDatabaseResult) bool { return record.Equal(g, o) }
func (g *GetDatabaseResult) Hash() int32 { return record.Hash(g) }
func (g *GetDatabaseResult) String() string { return record.String(g) }
func (g *GetDatabaseResult) Clone() *GetDatabaseResult { return record.Clone(g) }

type GetPartitionRequest struct {
	CatalogId       *string  `json:"CatalogId,omitempty" validate:"omitempty,min=1,max=255"`
	DatabaseName    *string  `json:"DatabaseName,omitempty" validate:"required,min=1,max=255"`
	TableName       *string  `json:"TableName,omitempty" validate:"required,min=1,max=255"`
	PartitionValues []string `json:"PartitionValues,omitempty" validate:"required,max=100"`
}

func (g *GetPartitionRequest) SetCatalogId(v string) { g.CatalogId = &v }
func (g *GetPartitionRequest) WithCatalogId(v string) *GetPartitionRequest {
	g.SetCatalogId(v)
	return g
}

func (g *GetPartitionRequest) SetDatabaseName(v string) { g.DatabaseName = &v }
func (g *GetPartitionRequest) WithDatabaseName(v string) *GetPartitionRequest {
	g.SetDatabaseName(v)
	return g
}

func (g *GetPartitionRequest) SetTableName(v string) { g.TableName = &v }
func (g *GetPartitionRequest) WithTableName(v string) *GetPartitionRequest {
	g.SetTableName(v)
	return g
}

func (g *GetPartitionRequest) SetPartitionValues(v []string) { g.PartitionValues = v }
func (g *GetPartitionRequest) WithPartitionValues(v []string) *GetPartitionRequest {
	g.SetPartitionValues(v)
	return g
}

func (g *GetPartitionRequest) Equal(o *GetPartitionRequest) bool { return record.Equal(g, o) }
func (g *GetPartitionRequest) Hash() int32 { return record.Hash(g) }
func (g *GetPartitionRequest) String() string { return record.String(g) }
func (g *GetPartitionRequest) Clone() *GetPartitionRequest { return record.Clone(g) }

type GetPartitionResult struct {
	Partition *Partition `json:"Partition,omitempty"`
}

func (g *GetPartitionResult) SetPartition(v *Partition) { g.Partition = v }
func (g *GetPartitionResult) WithPartition(v *Partition) *GetPartitionResult {
	g.SetPartition(v)
	return g
}

func (g *GetPartitionResult) Equal(o *GetPartitionResult) bool { return record.Equal(g, o) }
func (g *GetPartitionResult) Hash() int32 { return record.Hash(g) }
func (g *GetPartitionResult) String() string { return record.String(g) }
func (g *GetPartitionResult) Clone() *GetPartitionResult { return record.Clone(g) }

type GetTableVersionRequest struct {
	CatalogId    *string `json:"CatalogId,omitempty" validate:"omitempty,min=1,max=255"`
	DatabaseName *string `json:"DatabaseName,omitempty" validate:"required,min=1,max=255"`
	TableName    *string `json:"TableName,omitempty" validate:"required,min=1,max=255"`
	VersionId    *string `json:"VersionId,omitempty" validate:"omitempty,min=1,max=255"`
}

func (g *GetTableVersionRequest) SetCatalogId(v string) { g.CatalogId = &v }
func (g *GetTableVersionRequest) WithCatalogId(v string) *GetTableVersionRequest {
	g.SetCatalogId(v)
	return g
}

func (g *GetTableVersionRequest) SetDatabaseName(v string) { g.DatabaseName = &v }
func (g *GetTableVersionRequest) WithDatabaseName(v string) *GetTableVersionRequest {
	g.SetDatabaseName(v)
	return g
}

func (g *GetTableVersionRequest) SetTableName(v string) { g.TableName = &v }
func (g *GetTableVersionRequest) WithTableName(v string) *GetTableVersionRequest {
	g.SetTableName(v)
	return g
}

func (g *GetTableVersionRequest) SetVersionId(v string) { g.VersionId = &v }
func (g *GetTableVersionRequest) WithVersionId(v string) *GetTableVersionRequest {
	g.SetVersionId(v)
	return g
}

func (g *GetTableVersionRequest) Equal(o *GetTableVersionRequest) bool { return record.Equal(g, o) }
func (g *GetTableVersionRequest) Hash() int32 { return record.Hash(g) }
func (g *GetTableVersionRequest) String() string { return record.String(g) }
func (g *GetTableVersionRequest) Clone() *GetTableVersionRequest { return record.Clone(g) }

type GetTableVersionResult struct {
	TableVersion *TableVersion `json:"TableVersion,omitempty"`
}

func (g *GetTableVersionResult) SetTableVersion(v *TableVersion) { g.TableVersion = v }
func (g *GetTableVersionResult) WithTableVersion(v *TableVersion) *GetTableVersionResult {
	g.SetTableVersion(v)
	return g
}

func (g *GetTableVersionResult) Equal(o *GetTableVersionResult) bool { return record.Equal(g, o) }
func (g *GetTableVersionResult) Hash() int32 { return record.Hash(g) }
func (g *GetTableVersionResult) String() string { return record.String(g) }
func (g *GetTableVersionResult) Clone() *GetTableVersionResult { return record.Clone(g) }

type GetTriggerRequest struct {
	Name *string `json:"Name,omitempty" validate:"required,min=1,max=255"`
}

func (g *GetTriggerRequest) SetName(v string) { g.Name = &v }
func (g *GetTriggerRequest) WithName(v string) *GetTriggerRequest { g.SetName(v); return g }

func (g *GetTriggerRequest) Equal(o *GetTriggerRequest) bool { return record.Equal(g, o) }
func (g *GetTriggerRequest) Hash() int32 { return record.Hash(g) }
func (g *GetTriggerRequest) String() string { return record.String(g) }
func (g *GetTriggerRequest) Clone() *GetTriggerRequest { return record.Clone(g) }

type GetTriggerResult struct {
	Trigger *Trigger `json:"Trigger,omitempty"`
}

func (g *GetTriggerResult) SetTrigger(v *Trigger) { g.Trigger = v }
func (g *GetTriggerResult) WithTrigger(v *Trigger) *GetTriggerResult { g.SetTrigger(v); return g }

func (g *GetTriggerResult) Equal(o *GetTriggerResult) bool { return record.Equal(g, o) }
func (g *GetTriggerResult) Hash() int32 { return record.Hash(g) }
func (g *GetTriggerResult) String() string { return record.String(g) }
func (g *GetTriggerResult) Clone() *GetTriggerResult { return record.Clone(g) }

type GetSecurityConfigurationRequest struct {
	Name *string `json:"Name,omitempty" validate:"required,min=1,max=255"`
}

func (g *GetSecurityConfigurationRequest) SetName(v string) { g.Name = &v }
func (g *GetSecurityConfigurationRequest) WithName(v string) *GetSecurityConfigurationRequest {
	g.SetName(v)
	return g
}

func (g *GetSecurityConfigurationRequest) Equal(o *GetSecurityConfigurationRequest) bool {
	return record.Equal(g, o)
}
func (g *GetSecurityConfigurationRequest) Hash() int32 { return record.Hash(g) }
func (g *GetSecurityConfigurationRequest) String() string { return record.String(g) }
func (g *GetSecurityConfigurationRequest) Clone() *GetSecurityConfigurationRequest {
	return record.Clone(g)
}

type GetSecurityConfigurationResult struct {
	SecurityConfiguration *SecurityConfiguration `json:"SecurityConfiguration,omitempty"`
}

func (g *GetSecurityConfigurationResult) SetSecurityConfiguration(v *SecurityConfiguration) {
	g.SecurityConfiguration = v
}
func (g *GetSecurityConfigurationResult) WithSecurityConfiguration(v *SecurityConfiguration) *GetSecurityConfigurationResult {
	g.SetSecurityConfiguration(v)
	return g
}

func (g *GetSecurityConfigurationResult) Equal(o *GetSecurityConfigurationResult) bool {
	return record.Equal(g, o)
}
func (g *GetSecurityConfigurationResult) Hash() int32 { return record.Hash(g) }
func (g *GetSecurityConfigurationResult) String() string { return record.String(g) }
func (g *GetSecurityConfigurationResult) Clone() *GetSecurityConfigurationResult {
	return record.Clone(g)
}

type GetDevEndpointRequest struct {
	EndpointName *string `json:"EndpointName,omitempty" validate:"required"`
}

func (g *GetDevEndpointRequest) SetEndpointName(v string) { g.EndpointName = &v }
func (g *GetDevEndpointRequest) WithEndpointName(v string) *GetDevEndpointRequest {
	g.SetEndpointName(v)
	return g
}

func (g *GetDevEndpointRequest) Equal(o *GetDevEndpointRequest) bool { return record.Equal(g, o) }
func (g *GetDevEndpointRequest) Hash() int32 { return record.Hash(g) }
func (g *GetDevEndpointRequest) String() string { return record.String(g) }
func (g *GetDevEndpointRequest) Clone() *GetDevEndpointRequest { return record.Clone(g) }

type GetDevEndpointResult struct {
	DevEndpoint *DevEndpoint `json:"DevEndpoint,omitempty"`
}

func (g *GetDevEndpointResult) SetDevEndpoint(v *DevEndpoint) { g.DevEndpoint = v }
func (g *GetDevEndpointResult) WithDevEndpoint(v *DevEndpoint) *GetDevEndpointResult {
	g.SetDevEndpoint(v)
	return g
}

func (g *GetDevEndpointResult) Equal(o *GetDevEndpointResult) bool { return record.Equal(g, o) }
func (g *GetDevEndpointResult) Hash() int32 { return record.Hash(g) }
func (g *GetDevEndpointResult) String() string { return record.String(g) }
func (g *GetDevEndpointResult) Clone() *GetDevEndpointResult { return record.Clone(g) }

// CreateDevEndpointRequest cria um novo dev endpoint.
type CreateDevEndpointRequest struct {
	EndpointName          *string           `json:"EndpointName,omitempty" validate:"required"`
	RoleArn               *string           `json:"RoleArn,omitempty" validate:"required,iam_role_arn"`
	SecurityGroupIds      []string          `json:"SecurityGroupIds,omitempty"`
	SubnetId              *string           `json:"SubnetId,omitempty"`
	PublicKey             *string           `json:"PublicKey,omitempty"`
	PublicKeys            []string          `json:"PublicKeys,omitempty" validate:"omitempty,max=5"`
	NumberOfNodes         *int32            `json:"NumberOfNodes,omitempty"`
	WorkerType            WorkerType        `json:"WorkerType,omitempty"`
	GlueVersion           *string           `json:"GlueVersion,omitempty" validate:"omitempty,min=1,max=255,glue_version"`
	NumberOfWorkers       *int32            `json:"NumberOfWorkers,omitempty"`
	ExtraPythonLibsS3Path *string           `json:"ExtraPythonLibsS3Path,omitempty"`
	ExtraJarsS3Path       *string           `json:"ExtraJarsS3Path,omitempty"`
	SecurityConfiguration *string           `json:"SecurityConfiguration,omitempty" validate:"omitempty,min=1,max=255"`
	Tags                  map[string]string `json:"Tags,omitempty" validate:"omitempty,max=50"`
	Arguments             map[string]string `json:"Arguments,omitempty" validate:"omitempty,max=100"`
}

func (c *CreateDevEndpointRequest) SetEndpointName(v string) { c.EndpointName = &v }
func (c *CreateDevEndpointRequest) WithEndpointName(v string) *CreateDevEndpointRequest {
	c.SetEndpointName(v)
	return c
}

func (c *CreateDevEndpointRequest) SetRoleArn(v string) { c.RoleArn = &v }
func (c *CreateDevEndpointRequest) WithRoleArn(v string) *CreateDevEndpointRequest {
	c.SetRoleArn(v)
	return c
}

func (c *CreateDevEndpointRequest) SetSecurityGroupIds(v []string) { c.SecurityGroupIds = v }
func (c *CreateDevEndpointRequest) WithSecurityGroupIds(v []string) *CreateDevEndpointRequest {
	c.SetSecurityGroupIds(v)
	return c
}

func (c *CreateDevEndpointRequest) SetSubnetId(v string) { c.SubnetId = &v }
func (c *CreateDevEndpointRequest) WithSubnetId(v string) *CreateDevEndpointRequest {
	c.SetSubnetId(v)
	return c
}

func (c *CreateDevEndpointRequest) SetPublicKey(v string) { c.PublicKey = &v }
func (c *CreateDevEndpointRequest) WithPublicKey(v string) *CreateDevEndpointRequest {
	c.SetPublicKey(v)
	return c
}

func (c *CreateDevEndpointRequest) SetPublicKeys(v []string) { c.PublicKeys = v }
func (c *CreateDevEndpointRequest) WithPublicKeys(v []string) *CreateDevEndpointRequest {
	c.SetPublicKeys(v)
	return c
}

func (c *CreateDevEndpointRequest) SetNumberOfNodes(v int32) { c.NumberOfNodes = &v }
func (c *CreateDevEndpointRequest) WithNumberOfNodes(v int32) *CreateDevEndpointRequest {
	c.SetNumberOfNodes(v)
	return c
}

func (c *CreateDevEndpointRequest) SetWorkerType(v WorkerType) { c.WorkerType = v }
func (c *CreateDevEndpointRequest) WithWorkerType(v WorkerType) *CreateDevEndpointRequest {
	c.SetWorkerType(v)
	return c
}

func (c *CreateDevEndpointRequest) SetGlueVersion(v string) { c.GlueVersion = &v }
func (c *CreateDevEndpointRequest) WithGlueVersion(v string) *CreateDevEndpointRequest {
	c.SetGlueVersion(v)
	return c
}

func (c *CreateDevEndpointRequest) SetNumberOfWorkers(v int32) { c.NumberOfWorkers = &v }
func (c *CreateDevEndpointRequest) WithNumberOfWorkers(v int32) *CreateDevEndpointRequest {
	c.SetNumberOfWorkers(v)
	return c
}

func (c *CreateDevEndpointRequest) SetExtraPythonLibsS3Path(v string) {
	c.ExtraPythonLibsS3Path = &v
}
func (c *CreateDevEndpointRequest) WithExtraPythonLibsS3Path(v string) *CreateDevEndpointRequest {
	c.SetExtraPythonLibsS3Path(v)
	return c
}

func (c *CreateDevEndpointRequest) SetExtraJarsS3Path(v string) { c.ExtraJarsS3Path = &v }
func (c *CreateDevEndpointRequest) WithExtraJarsS3Path(v string) *CreateDevEndpointRequest {
	c.SetExtraJarsS3Path(v)
	return c
}

func (c *CreateDevEndpointRequest) SetSecurityConfiguration(v string) {
	c.SecurityConfiguration = &v
}
func (c *CreateDevEndpointRequest) WithSecurityConfiguration(v string) *CreateDevEndpointRequest {
	c.SetSecurityConfiguration(v)
	return c
}

func (c *CreateDevEndpointRequest) SetTags(v map[string]string) { c.Tags = v }
func (c *CreateDevEndpointRequest) WithTags(v map[string]string) *CreateDevEndpointRequest {
	c.SetTags(v)
	return c
}

func (c *CreateDevEndpointRequest) SetArguments(v map[string]string) { c.Arguments = v }
func (c *CreateDevEndpointRequest) WithArguments(v map[string]string) *CreateDevEndpointRequest {
	c.SetArguments(v)
	return c
}

func (c *CreateDevEndpointRequest) Equal(o *CreateDevEndpointRequest) bool {
	return record.Equal(c, o)
}
func (c *CreateDevEndpointRequest) Hash() int32 { return record.Hash(c) }
func (c *CreateDevEndpointRequest) String() string { return record.String(c) }
func (c *CreateDevEndpointRequest) Clone() *CreateDevEndpointRequest { return record.Clone(c) }

type CreateDevEndpointResult struct {
	EndpointName                       *string           `json:"EndpointName,omitempty"`
	Status                             *string           `json:"Status,omitempty"`
	SecurityGroupIds                   []string          `json:"SecurityGroupIds,omitempty"`
	SubnetId                           *string           `json:"SubnetId,omitempty"`
	RoleArn                            *string           `json:"RoleArn,omitempty"`
	YarnEndpointAddress                *string           `json:"YarnEndpointAddress,omitempty"`
	ZeppelinRemoteSparkInterpreterPort *int32            `json:"ZeppelinRemoteSparkInterpreterPort,omitempty"`
	NumberOfNodes                      *int32            `json:"NumberOfNodes,omitempty"`
	WorkerType                         WorkerType        `json:"WorkerType,omitempty"`
	GlueVersion                        *string           `json:"GlueVersion,omitempty"`
	NumberOfWorkers                    *int32            `json:"NumberOfWorkers,omitempty"`
	AvailabilityZone                   *string           `json:"AvailabilityZone,omitempty"`
	VpcId                              *string           `json:"VpcId,omitempty"`
	ExtraPythonLibsS3Path              *string           `json:"ExtraPythonLibsS3Path,omitempty"`
	ExtraJarsS3Path                    *string           `json:"ExtraJarsS3Path,omitempty"`
	FailureReason                      *string           `json:"FailureReason,omitempty"`
	SecurityConfiguration              *string           `json:"SecurityConfiguration,omitempty"`
	CreatedTimestamp                   *Timestamp        `json:"CreatedTimestamp,omitempty"`
	Arguments                          map[string]string `json:"Arguments,omitempty"`
}

func (c *CreateDevEndpointResult) SetEndpointName(v string) { c.EndpointName = &v }
func (c *CreateDevEndpointResult) WithEndpointName(v string) *CreateDevEndpointResult {
	c.SetEndpointName(v)
	return c
}

func (c *CreateDevEndpointResult) SetStatus(v string) { c.Status = &v }
func (c *CreateDevEndpointResult) WithStatus(v string) *CreateDevEndpointResult {
	c.SetStatus(v)
	return c
}

func (c *CreateDevEndpointResult) SetSecurityGroupIds(v []string) { c.SecurityGroupIds = v }
func (c *CreateDevEndpointResult) WithSecurityGroupIds(v []string) *CreateDevEndpointResult {
	c.SetSecurityGroupIds(v)
	return c
}

func (c *CreateDevEndpointResult) SetSubnetId(v string) { c.SubnetId = &v }
func (c *CreateDevEndpointResult) WithSubnetId(v string) *CreateDevEndpointResult {
	c.SetSubnetId(v)
	return c
}

func (c *CreateDevEndpointResult) SetRoleArn(v string) { c.RoleArn = &v }
func (c *CreateDevEndpointResult) WithRoleArn(v string) *CreateDevEndpointResult {
	c.SetRoleArn(v)
	return c
}

func (c *CreateDevEndpointResult) SetYarnEndpointAddress(v string) { c.YarnEndpointAddress = &v }
func (c *CreateDevEndpointResult) WithYarnEndpointAddress(v string) *CreateDevEndpointResult {
	c.SetYarnEndpointAddress(v)
	return c
}

func (c *CreateDevEndpointResult) SetZeppelinRemoteSparkInterpreterPort(v int32) {
	c.ZeppelinRemoteSparkInterpreterPort = &v
}
func (c *CreateDevEndpointResult) WithZeppelinRemoteSparkInterpreterPort(v int32) *CreateDevEndpointResult {
	c.SetZeppelinRemoteSparkInterpreterPort(v)
	return c
}

func (c *CreateDevEndpointResult) SetNumberOfNodes(v int32) { c.NumberOfNodes = &v }
func (c *CreateDevEndpointResult) WithNumberOfNodes(v int32) *CreateDevEndpointResult {
	c.SetNumberOfNodes(v)
	return c
}

func (c *CreateDevEndpointResult) SetWorkerType(v WorkerType) { c.WorkerType = v }
func (c *CreateDevEndpointResult) WithWorkerType(v WorkerType) *CreateDevEndpointResult {
	c.SetWorkerType(v)
	return c
}

func (c *CreateDevEndpointResult) SetGlueVersion(v string) { c.GlueVersion = &v }
func (c *CreateDevEndpointResult) WithGlueVersion(v string) *CreateDevEndpointResult {
	c.SetGlueVersion(v)
	return c
}

func (c *CreateDevEndpointResult) SetNumberOfWorkers(v int32) { c.NumberOfWorkers = &v }
func (c *CreateDevEndpointResult) WithNumberOfWorkers(v int32) *CreateDevEndpointResult {
	c.SetNumberOfWorkers(v)
	return c
}

func (c *CreateDevEndpointResult) SetAvailabilityZone(v string) { c.AvailabilityZone = &v }
func (c *CreateDevEndpointResult) WithAvailabilityZone(v string) *CreateDevEndpointResult {
	c.SetAvailabilityZone(v)
	return c
}

func (c *CreateDevEndpointResult) SetVpcId(v string) { c.VpcId = &v }
func (c *CreateDevEndpointResult) WithVpcId(v string) *CreateDevEndpointResult {
	c.SetVpcId(v)
	return c
}

func (c *CreateDevEndpointResult) SetExtraPythonLibsS3Path(v string) {
	c.ExtraPythonLibsS3Path = &v
}
func (c *CreateDevEndpointResult) WithExtraPythonLibsS3Path(v string) *CreateDevEndpointResult {
	c.SetExtraPythonLibsS3Path(v)
	return c
}

func (c *CreateDevEndpointResult) SetExtraJarsS3Path(v string) { c.ExtraJarsS3Path = &v }
func (c *CreateDevEndpointResult) WithExtraJarsS3Path(v string) *CreateDevEndpointResult {
	c.SetExtraJarsS3Path(v)
	return c
}

func (c *CreateDevEndpointResult) SetFailureReason(v string) { c.FailureReason = &v }
func (c *CreateDevEndpointResult) WithFailureReason(v string) *CreateDevEndpointResult {
	c.SetFailureReason(v)
	return c
}

func (c *CreateDevEndpointResult) SetSecurityConfiguration(v string) {
	c.SecurityConfiguration = &v
}
func (c *CreateDevEndpointResult) WithSecurityConfiguration(v string) *CreateDevEndpointResult {
	c.SetSecurityConfiguration(v)
	return c
}

func (c *CreateDevEndpointResult) SetCreatedTimestamp(v time.Time) {
	c.CreatedTimestamp = NewTimestamp(v)
}
func (c *CreateDevEndpointResult) WithCreatedTimestamp(v time.Time) *CreateDevEndpointResult {
	c.SetCreatedTimestamp(v)
	return c
}

func (c *CreateDevEndpointResult) SetArguments(v map[string]string) { c.Arguments = v }
func (c *CreateDevEndpointResult) WithArguments(v map[string]string) *CreateDevEndpointResult {
	c.SetArguments(v)
	return c
}

func (c *CreateDevEndpointResult) Equal(o *CreateDevEndpointResult) bool {
	return record.Equal(c, o)
}
func (c *CreateDevEndpointResult) Hash() int32 { return record.Hash(c) }
func (c *CreateDevEndpointResult) String() string { return record.String(c) }
func (c *CreateDevEndpointResult) Clone() *CreateDevEndpointResult { return record.Clone(c) }

type GetJobRunRequest struct {
	JobName              *string `json:"JobName,omitempty" validate:"required,min=1,max=255"`
	RunId                *string `json:"RunId,omitempty" validate:"required,min=1,max=255"`
	PredecessorsIncluded *bool   `json:"PredecessorsIncluded,omitempty"`
}

func (g *GetJobRunRequest) SetJobName(v string) { g.JobName = &v }
func (g *GetJobRunRequest) WithJobName(v string) *GetJobRunRequest { g.SetJobName(v); return g }

func (g *GetJobRunRequest) SetRunId(v string) { g.RunId = &v }
func (g *GetJobRunRequest) WithRunId(v string) *GetJobRunRequest { g.SetRunId(v); return g }

func (g *GetJobRunRequest) SetPredecessorsIncluded(v bool) { g.PredecessorsIncluded = &v }
func (g *GetJobRunRequest) WithPredecessorsIncluded(v bool) *GetJobRunRequest {
	g.SetPredecessorsIncluded(v)
	return g
}

func (g *GetJobRunRequest) Equal(o *GetJobRunRequest) bool { return record.Equal(g, o) }
func (g *GetJobRunRequest) Hash() int32 { return record.Hash(g) }
func (g *GetJobRunRequest) String() string { return record.String(g) }
func (g *GetJobRunRequest) Clone() *GetJobRunRequest { return record.Clone(g) }

type GetJobRunResult struct {
	JobRun *JobRun `json:"JobRun,omitempty"`
}

func (g *GetJobRunResult) SetJobRun(v *JobRun) { g.JobRun = v }
func (g *GetJobRunResult) WithJobRun(v *JobRun) *GetJobRunResult { g.SetJobRun(v); return g }

func (g *GetJobRunResult) Equal(o *GetJobRunResult) bool { return record.Equal(g, o) }
func (g *GetJobRunResult) Hash() int32 { return record.Hash(g) }
func (g *GetJobRunResult) String() string { return record.String(g) }
func (g *GetJobRunResult) Clone() *GetJobRunResult { return record.Clone(g) }

type GetJobRunsRequest struct {
	JobName    *string `json:"JobName,omitempty" validate:"required,min=1,max=255"`
	NextToken  *string `json:"NextToken,omitempty"`
	MaxResults *int32  `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=1000"`
}

func (g *GetJobRunsRequest) SetJobName(v string) { g.JobName = &v }
func (g *GetJobRunsRequest) WithJobName(v string) *GetJobRunsRequest { g.SetJobName(v); return g }

func (g *GetJobRunsRequest) SetNextToken(v string) { g.NextToken = &v }
func (g *GetJobRunsRequest) WithNextToken(v string) *GetJobRunsRequest {
	g.SetNextToken(v)
	return g
}

func (g *GetJobRunsRequest) SetMaxResults(v int32) { g.MaxResults = &v }
func (g *GetJobRunsRequest) WithMaxResults(v int32) *GetJobRunsRequest {
	g.SetMaxResults(v)
	return g
}

func (g *GetJobRunsRequest) Equal(o *GetJobRunsRequest) bool { return record.Equal(g, o) }
func (g *GetJobRunsRequest) Hash() int32 { return record.Hash(g) }
func (g *GetJobRunsRequest) String() string { return record.String(g) }
func (g *GetJobRunsRequest) Clone() *GetJobRunsRequest { return record.Clone(g) }

type GetJobRunsResult struct {
	JobRuns   []JobRun `json:"JobRuns,omitempty"`
	NextToken *string  `json:"NextToken,omitempty"`
}

func (g *GetJobRunsResult) SetJobRuns(v []JobRun) { g.JobRuns = v }
func (g *GetJobRunsResult) WithJobRuns(v []JobRun) *GetJobRunsResult { g.SetJobRuns(v); return g }

func (g *GetJobRunsResult) SetNextToken(v string) { g.NextToken = &v }
func (g *GetJobRunsResult) WithNextToken(v string) *GetJobRunsResult { g.SetNextToken(v); return g }

func (g *GetJobRunsResult) Equal(o *GetJobRunsResult) bool { return record.Equal(g, o) }
func (g *GetJobRunsResult) Hash() int32 { return record.Hash(g) }
func (g *GetJobRunsResult) String() string { return record.String(g) }
func (g *GetJobRunsResult) Clone() *GetJobRunsResult { return record.Clone(g) }

type GetConnectionRequest struct {
	CatalogId    *string `json:"CatalogId,omitempty" validate:"omitempty,min=1,max=255"`
	Name         *string `json:"Name,omitempty" validate:"required,min=1,max=255"`
	HidePassword *bool   `json:"HidePassword,omitempty"`
}

func (g *GetConnectionRequest) SetCatalogId(v string) { g.CatalogId = &v }
func (g *GetConnectionRequest) WithCatalogId(v string) *GetConnectionRequest {
	g.SetCatalogId(v)
	return g
}

func (g *GetConnectionRequest) SetName(v string) { g.Name = &v }
func (g *GetConnectionRequest) WithName(v string) *GetConnectionRequest { g.SetName(v); return g }

func (g *GetConnectionRequest) SetHidePassword(v bool) { g.HidePassword = &v }
func (g *GetConnectionRequest) WithHidePassword(v bool) *GetConnectionRequest {
	g.SetHidePassword(v)
	return g
}

func (g *GetConnectionRequest) Equal(o *GetConnectionRequest) bool { return record.Equal(g, o) }
func (g *GetConnectionRequest) Hash() int32 { return record.Hash(g) }
func (g *GetConnectionRequest) String() string { return record.String(g) }
func (g *GetConnectionRequest) Clone() *GetConnectionRequest { return record.Clone(g) }

type GetConnectionResult struct {
	Connection *Connection `json:"Connection,omitempty"`
}

func (g *GetConnectionResult) SetConnection(v *Connection) { g.Connection = v }
func (g *GetConnectionResult) WithConnection(v *Connection) *GetConnectionResult {
	g.SetConnection(v)
	return g
}

func (g *GetConnectionResult) Equal(o *GetConnectionResult) bool { return record.Equal(g, o) }
func (g *GetConnectionResult) Hash() int32 { return record.Hash(g) }
func (g *GetConnectionResult) String() string { return record.String(g) }
func (g *GetConnectionResult) Clone() *GetConnectionResult { return record.Clone(g) }

type GetCrawlerRequest struct {
	Name *string `json:"Name,omitempty" validate:"required,min=1,max=255"`
}

func (g *GetCrawlerRequest) SetName(v string) { g.Name = &v }
func (g *GetCrawlerRequest) WithName(v string) *GetCrawlerRequest { g.SetName(v); return g }

func (g *GetCrawlerRequest) Equal(o *GetCrawlerRequest) bool { return record.Equal(g, o) }
func (g *GetCrawlerRequest) Hash() int32 { return record.Hash(g) }
func (g *GetCrawlerRequest) String() string { return record.String(g) }
func (g *GetCrawlerRequest) Clone() *GetCrawlerRequest { return record.Clone(g) }

type GetCrawlerResult struct {
	Crawler *Crawler `json:"Crawler,omitempty"`
}

func (g *GetCrawlerResult) SetCrawler(v *Crawler) { g.Crawler = v }
func (g *GetCrawlerResult) WithCrawler(v *Crawler) *GetCrawlerResult { g.SetCrawler(v); return g }

func (g *GetCrawlerResult) Equal(o *GetCrawlerResult) bool { return record.Equal(g, o) }
func (g *GetCrawlerResult) Hash() int32 { return record.Hash(g) }
func (g *GetCrawlerResult) String() string { return record.String(g) }
func (g *GetCrawlerResult) Clone() *GetCrawlerResult { return record.Clone(g) }
