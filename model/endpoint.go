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

// DevEndpoint é um endpoint de desenvolvimento para scripts de ETL.
type DevEndpoint struct {
	EndpointName                       *string           `json:"EndpointName,omitempty"`
	RoleArn                            *string           `json:"RoleArn,omitempty"`
	SecurityGroupIds                   []string          `json:"SecurityGroupIds,omitempty"`
	SubnetId                           *string           `json:"SubnetId,omitempty"`
	YarnEndpointAddress                *string           `json:"YarnEndpointAddress,omitempty"`
	PrivateAddress                     *string           `json:"PrivateAddress,omitempty"`
	ZeppelinRemoteSparkInterpreterPort *int32            `json:"ZeppelinRemoteSparkInterpreterPort,omitempty"`
	PublicAddress                      *string           `json:"PublicAddress,omitempty"`
	Status                             *string           `json:"Status,omitempty"`
	WorkerType                         WorkerType        `json:"WorkerType,omitempty"`
	GlueVersion                        *string           `json:"GlueVersion,omitempty"`
	NumberOfWorkers                    *int32            `json:"NumberOfWorkers,omitempty"`
	NumberOfNodes                      *int32            `json:"NumberOfNodes,omitempty"`
	AvailabilityZone                   *string           `json:"AvailabilityZone,omitempty"`
	VpcId                              *string           `json:"VpcId,omitempty"`
	ExtraPythonLibsS3Path              *string           `json:"ExtraPythonLibsS3Path,omitempty"`
	ExtraJarsS3Path                    *string           `json:"ExtraJarsS3Path,omitempty"`
	FailureReason                      *string           `json:"FailureReason,omitempty"`
	CreatedTimestamp                   *Timestamp        `json:"CreatedTimestamp,omitempty"`
	LastModifiedTimestamp              *Timestamp        `json:"LastModifiedTimestamp,omitempty"`
	PublicKeys                         []string          `json:"PublicKeys,omitempty"`
	SecurityConfiguration              *string           `json:"SecurityConfiguration,omitempty"`
	Arguments                          map[string]string `json:"Arguments,omitempty"`
}

func (d *DevEndpoint) SetEndpointName(v string) { d.EndpointName = &v }
func (d *DevEndpoint) WithEndpointName(v string) *DevEndpoint { d.SetEndpointName(v); return d }

func (d *DevEndpoint) SetRoleArn(v string) { d.RoleArn = &v }
func (d *DevEndpoint) WithRoleArn(v string) *DevEndpoint { d.SetRoleArn(v); return d }

func (d *DevEndpoint) SetSecurityGroupIds(v []string) { d.SecurityGroupIds = v }
func (d *DevEndpoint) WithSecurityGroupIds(v []string) *DevEndpoint {
	d.SetSecurityGroupIds(v)
	return d
}

func (d *DevEndpoint) SetSubnetId(v string) { d.SubnetId = &v }
func (d *DevEndpoint) WithSubnetId(v string) *DevEndpoint { d.SetSubnetId(v); return d }

func (d *DevEndpoint) SetYarnEndpointAddress(v string) { d.YarnEndpointAddress = &v }
func (d *DevEndpoint) WithYarnEndpointAddress(v string) *DevEndpoint {
	d.SetYarnEndpointAddress(v)
	return d
}

func (d *DevEndpoint) SetPrivateAddress(v string) { d.PrivateAddress = &v }
func (d *DevEndpoint) WithPrivateAddress(v string) *DevEndpoint { d.SetPrivateAddress(v); return d }

func (d *DevEndpoint) SetZeppelinRemoteSparkInterpreterPort(v int32) {
	d.ZeppelinRemoteSparkInterpreterPort = &v
}
func (d *DevEndpoint) WithZeppelinRemoteSparkInterpreterPort(v int32) *DevEndpoint {
	d.SetZeppelinRemoteSparkInterpreterPort(v)
	return d
}

func (d *DevEndpoint) SetPublicAddress(v string) { d.PublicAddress = &v }
func (d *DevEndpoint) WithPublicAddress(v string) *DevEndpoint { d.SetPublicAddress(v); return d }

func (d *DevEndpoint) SetStatus(v string) { d.Status = &v }
func (d *DevEndpoint) WithStatus(v string) *DevEndpoint { d.SetStatus(v); return d }

func (d *DevEndpoint) SetWorkerType(v WorkerType) { d.WorkerType = v }
func (d *DevEndpoint) WithWorkerType(v WorkerType) *DevEndpoint { d.SetWorkerType(v); return d }

func (d *DevEndpoint) SetGlueVersion(v string) { d.GlueVersion = &v }
func (d *DevEndpoint) WithGlueVersion(v string) *DevEndpoint { d.SetGlueVersion(v); return d }

func (d *DevEndpoint) SetNumberOfWorkers(v int32) { d.NumberOfWorkers = &v }
func (d *DevEndpoint) WithNumberOfWorkers(v int32) *DevEndpoint {
	d.SetNumberOfWorkers(v)
	return d
}

func (d *DevEndpoint) SetNumberOfNodes(v int32) { d.NumberOfNodes = &v }
func (d *DevEndpoint) WithNumberOfNodes(v int32) *DevEndpoint { d.SetNumberOfNodes(v); return d }

func (d *DevEndpoint) SetAvailabilityZone(v string) { d.AvailabilityZone = &v }
func (d *DevEndpoint) WithAvailabilityZone(v string) *DevEndpoint {
	d.SetAvailabilityZone(v)
	return d
}

func (d *DevEndpoint) SetVpcId(v string) { d.VpcId = &v }
func (d *DevEndpoint) WithVpcId(v string) *DevEndpoint { d.SetVpcId(v); return d }

func (d *DevEndpoint) SetExtraPythonLibsS3Path(v string) { d.ExtraPythonLibsS3Path = &v }
func (d *DevEndpoint) WithExtraPythonLibsS3Path(v string) *DevEndpoint {
	d.SetExtraPythonLibsS3Path(v)
	return d
}

func (d *DevEndpoint) SetExtraJarsS3Path(v string) { d.ExtraJarsS3Path = &v }
func (d *DevEndpoint) WithExtraJarsS3Path(v string) *DevEndpoint {
	d.SetExtraJarsS3Path(v)
	return d
}

func (d *DevEndpoint) SetFailureReason(v string) { d.FailureReason = &v }
func (d *DevEndpoint) WithFailureReason(v string) *DevEndpoint { d.SetFailureReason(v); return d }

func (d *DevEndpoint) SetCreatedTimestamp(v time.Time) { d.CreatedTimestamp = NewTimestamp(v) }
func (d *DevEndpoint) WithCreatedTimestamp(v time.Time) *DevEndpoint {
	d.SetCreatedTimestamp(v)
	return d
}

func (d *DevEndpoint) SetLastModifiedTimestamp(v time.Time) {
	d.LastModifiedTimestamp = NewTimestamp(v)
}
func (d *DevEndpoint) WithLastModifiedTimestamp(v time.Time) *DevEndpoint {
	d.SetLastModifiedTimestamp(v)
	return d
}

func (d *DevEndpoint) SetPublicKeys(v []string) { d.PublicKeys = v }
func (d *DevEndpoint) WithPublicKeys(v []string) *DevEndpoint { d.SetPublicKeys(v); return d }

func (d *DevEndpoint) SetSecurityConfiguration(v string) { d.SecurityConfiguration = &v }
func (d *DevEndpoint) WithSecurityConfiguration(v string) *DevEndpoint {
	d.SetSecurityConfiguration(v)
	return d
}

func (d *DevEndpoint) SetArguments(v map[string]string) { d.Arguments = v }
func (d *DevEndpoint) WithArguments(v map[string]string) *DevEndpoint {
	d.SetArguments(v)
	return d
}

func (d *DevEndpoint) Equal(o *DevEndpoint) bool { return record.Equal(d, o) }
func (d *DevEndpoint) Hash() int32 { return record.Hash(d) }
func (d *DevEndpoint) String() string { return record.String(d) }
func (d *DevEndpoint) Clone() *DevEndpoint { return record.Clone(d) }

type PhysicalConnectionRequirements struct {
	SubnetId            *string  `json:"SubnetId,omitempty"`
	SecurityGroupIdList []string `json:"SecurityGroupIdList,omitempty"`
	AvailabilityZone    *string  `json:"AvailabilityZone,omitempty"`
}

func (p *PhysicalConnectionRequirements) SetSubnetId(v string) { p.SubnetId = &v }
func (p *PhysicalConnectionRequirements) WithSubnetId(v string) *PhysicalConnectionRequirements {
	p.SetSubnetId(v)
	return p
}

func (p *PhysicalConnectionRequirements) SetSecurityGroupIdList(v []string) {
	p.SecurityGroupIdList = v
}
func (p *PhysicalConnectionRequirements) WithSecurityGroupIdList(v []string) *PhysicalConnectionRequirements {
	p.SetSecurityGroupIdList(v)
	return p
}

func (p *PhysicalConnectionRequirements) SetAvailabilityZone(v string) { p.AvailabilityZone = &v }
func (p *PhysicalConnectionRequirements) WithAvailabilityZone(v string) *PhysicalConnectionRequirements {
	p.SetAvailabilityZone(v)
	return p
}

func (p *PhysicalConnectionRequirements) Equal(o *PhysicalConnectionRequirements) bool {
	return record.Equal(p, o)
}
func (p *PhysicalConnectionRequirements) Hash() int32 { return record.Hash(p) }
func (p *PhysicalConnectionRequirements) String() string { return record.String(p) }
func (p *PhysicalConnectionRequirements) Clone() *PhysicalConnectionRequirements {
	return record.Clone(p)
}

// Connection guarda as propriedades de conexão com uma fonte de dados.
type Connection struct {
	Name                           *string                         `json:"Name,omitempty"`
	Description                    *string                         `json:"Description,omitempty"`
	ConnectionType                 ConnectionType                  `json:"ConnectionType,omitempty"`
	MatchCriteria                  []string                        `json:"MatchCriteria,omitempty"`
	ConnectionProperties           map[string]string               `json:"ConnectionProperties,omitempty"`
	PhysicalConnectionRequirements *PhysicalConnectionRequirements `json:"PhysicalConnectionRequirements,omitempty"`
	CreationTime                   *Timestamp                      `json:"CreationTime,omitempty"`
	LastUpdatedTime                *Timestamp                      `json:"LastUpdatedTime,omitempty"`
	LastUpdatedBy                  *string                         `json:"LastUpdatedBy,omitempty"`
}

func (c *Connection) SetName(v string) { c.Name = &v }
func (c *Connection) WithName(v string) *Connection { c.SetName(v); return c }

func (c *Connection) SetDescription(v string) { c.Description = &v }
func (c *Connection) WithDescription(v string) *Connection { c.SetDescription(v); return c }

func (c *Connection) SetConnectionType(v ConnectionType) { c.ConnectionType = v }
func (c *Connection) WithConnectionType(v ConnectionType) *Connection {
	c.SetConnectionType(v)
	return c
}

func (c *Connection) SetMatchCriteria(v []string) { c.MatchCriteria = v }
func (c *Connection) WithMatchCriteria(v []string) *Connection { c.SetMatchCriteria(v); return c }

func (c *Connection) SetConnectionProperties(v map[string]string) { c.ConnectionProperties = v }
func (c *Connection) WithConnectionProperties(v map[string]string) *Connection {
	c.SetConnectionProperties(v)
	return c
}

func (c *Connection) SetPhysicalConnectionRequirements(v *PhysicalConnectionRequirements) {
	c.PhysicalConnectionRequirements = v
}
func (c *Connection) WithPhysicalConnectionRequirements(v *PhysicalConnectionRequirements) *Connection {
	c.SetPhysicalConnectionRequirements(v)
	return c
}

func (c *Connection) SetCreationTime(v time.Time) { c.CreationTime = NewTimestamp(v) }
func (c *Connection) WithCreationTime(v time.Time) *Connection { c.SetCreationTime(v); return c }

func (c *Connection) SetLastUpdatedTime(v time.Time) { c.LastUpdatedTime = NewTimestamp(v) }
func (c *Connection) WithLastUpdatedTime(v time.Time) *Connection {
	c.SetLastUpdatedTime(v)
	return c
}

func (c *Connection) SetLastUpdatedBy(v string) { c.LastUpdatedBy = &v }
func (c *Connection) WithLastUpdatedBy(v string) *Connection { c.SetLastUpdatedBy(v); return c }

func (c *Connection) Equal(o *Connection) bool { return record.Equal(c, o) }
func (c *Connection) Hash() int32 { return record.Hash(c) }
func (c *Connection) String() string { return record.String(c) }
func (c *Connection) Clone() *Connection { return record.Clone(c) }
