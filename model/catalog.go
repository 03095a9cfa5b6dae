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

// DataLakePrincipal identifica um principal do Lake Formation.
type DataLakePrincipal struct {
	DataLakePrincipalIdentifier *string `json:"DataLakePrincipalIdentifier,omitempty" validate:"omitempty,min=1,max=255"`
}

func (d *DataLakePrincipal) SetDataLakePrincipalIdentifier(v string) {
	d.DataLakePrincipalIdentifier = &v
}
func (d *DataLakePrincipal) WithDataLakePrincipalIdentifier(v string) *DataLakePrincipal {
	d.SetDataLakePrincipalIdentifier(v)
	return d
}

func (d *DataLakePrincipal) Equal(o *DataLakePrincipal) bool { return record.Equal(d, o) }
func (d *DataLakePrincipal) Hash() int32 { return record.Hash(d) }
func (d *DataLakePrincipal) String() string { return record.String(d) }
func (d *DataLakePrincipal) Clone() *DataLakePrincipal { return record.Clone(d) }

// PrincipalPermissions associa permissões a um principal.
type PrincipalPermissions struct {
	Principal   *DataLakePrincipal `json:"Principal,omitempty"`
	Permissions []Permission       `json:"Permissions,omitempty"`
}

func (p *PrincipalPermissions) SetPrincipal(v *DataLakePrincipal) { p.Principal = v }
func (p *PrincipalPermissions) WithPrincipal(v *DataLakePrincipal) *PrincipalPermissions {
	p.SetPrincipal(v)
	return p
}

func (p *PrincipalPermissions) SetPermissions(v []Permission) { p.Permissions = v }
func (p *PrincipalPermissions) WithPermissions(v []Permission) *PrincipalPermissions {
	p.SetPermissions(v)
	return p
}

func (p *PrincipalPermissions) Equal(o *PrincipalPermissions) bool { return record.Equal(p, o) }
func (p *PrincipalPermissions) Hash() int32 { return record.Hash(p) }
func (p *PrincipalPermissions) String() string { return record.String(p) }
func (p *PrincipalPermissions) Clone() *PrincipalPermissions { return record.Clone(p) }

// Database é um banco de dados do catálogo: um agrupamento lógico de tabelas.
type Database struct {
	Name                          *string                `json:"Name,omitempty"`
	Description                   *string                `json:"Description,omitempty"`
	LocationUri                   *string                `json:"LocationUri,omitempty"`
	Parameters                    map[string]string      `json:"Parameters,omitempty"`
	CreateTime                    *Timestamp             `json:"CreateTime,omitempty"`
	CreateTableDefaultPermissions []PrincipalPermissions `json:"CreateTableDefaultPermissions,omitempty"`
	CatalogId                     *string                `json:"CatalogId,omitempty"`
}

func (d *Database) SetName(v string) { d.Name = &v }
func (d *Database) WithName(v string) *Database { d.SetName(v); return d }

func (d *Database) SetDescription(v string) { d.Description = &v }
func (d *Database) WithDescription(v string) *Database { d.SetDescription(v); return d }

func (d *Database) SetLocationUri(v string) { d.LocationUri = &v }
func (d *Database) WithLocationUri(v string) *Database { d.SetLocationUri(v); return d }

func (d *Database) SetParameters(v map[string]string) { d.Parameters = v }
func (d *Database) WithParameters(v map[string]string) *Database { d.SetParameters(v); return d }

func (d *Database) SetCreateTime(v time.Time) { d.CreateTime = NewTimestamp(v) }
func (d *Database) WithCreateTime(v time.Time) *Database { d.SetCreateTime(v); return d }

func (d *Database) SetCreateTableDefaultPermissions(v []PrincipalPermissions) {
	d.CreateTableDefaultPermissions = v
}
func (d *Database) WithCreateTableDefaultPermissions(v []PrincipalPermissions) *Database {
	d.SetCreateTableDefaultPermissions(v)
	return d
}

func (d *Database) SetCatalogId(v string) { d.CatalogId = &v }
func (d *Database) WithCatalogId(v string) *Database { d.SetCatalogId(v); return d }

func (d *Database) Equal(o *Database) bool { return record.Equal(d, o) }
func (d *Database) Hash() int32 { return record.Hash(d) }
func (d *Database) String() string { return record.String(d) }
func (d *Database) Clone() *Database { return record.Clone(d) }

type Column struct {
	Name       *string           `json:"Name,omitempty"`
	Type       *string           `json:"Type,omitempty"`
	Comment    *string           `json:"Comment,omitempty"`
	Parameters map[string]string `json:"Parameters,omitempty"`
}

func (c *Column) SetName(v string) { c.Name = &v }
func (c *Column) WithName(v string) *Column { c.SetName(v); return c }

func (c *Column) SetType(v string) { c.Type = &v }
func (c *Column) WithType(v string) *Column { c.SetType(v); return c }

func (c *Column) SetComment(v string) { c.Comment = &v }
func (c *Column) WithComment(v string) *Column { c.SetComment(v); return c }

func (c *Column) SetParameters(v map[string]string) { c.Parameters = v }
func (c *Column) WithParameters(v map[string]string) *Column { c.SetParameters(v); return c }

func (c *Column) Equal(o *Column) bool { return record.Equal(c, o) }
func (c *Column) Hash() int32 { return record.Hash(c) }
func (c *Column) String() string { return record.String(c) }
func (c *Column) Clone() *Column { return record.Clone(c) }

// StorageDescriptor descreve o armazenamento físico de uma tabela ou partição.
type StorageDescriptor struct {
	Columns         []Column          `json:"Columns,omitempty"`
	Location        *string           `json:"Location,omitempty"`
	InputFormat     *string           `json:"InputFormat,omitempty"`
	OutputFormat    *string           `json:"OutputFormat,omitempty"`
	Compressed      *bool             `json:"Compressed,omitempty"`
	NumberOfBuckets *int32            `json:"NumberOfBuckets,omitempty"`
	BucketColumns   []string          `json:"BucketColumns,omitempty"`
	Parameters      map[string]string `json:"Parameters,omitempty"`
}

func (s *StorageDescriptor) SetColumns(v []Column) { s.Columns = v }
func (s *StorageDescriptor) WithColumns(v []Column) *StorageDescriptor { s.SetColumns(v); return s }

func (s *StorageDescriptor) SetLocation(v string) { s.Location = &v }
func (s *StorageDescriptor) WithLocation(v string) *StorageDescriptor { s.SetLocation(v); return s }

func (s *StorageDescriptor) SetInputFormat(v string) { s.InputFormat = &v }
func (s *StorageDescriptor) WithInputFormat(v string) *StorageDescriptor {
	s.SetInputFormat(v)
	return s
}

func (s *StorageDescriptor) SetOutputFormat(v string) { s.OutputFormat = &v }
func (s *StorageDescriptor) WithOutputFormat(v string) *StorageDescriptor {
	s.SetOutputFormat(v)
	return s
}

func (s *StorageDescriptor) SetCompressed(v bool) { s.Compressed = &v }
func (s *StorageDescriptor) WithCompressed(v bool) *StorageDescriptor {
	s.SetCompressed(v)
	return s
}

func (s *StorageDescriptor) SetNumberOfBuckets(v int32) { s.NumberOfBuckets = &v }
func (s *StorageDescriptor) WithNumberOfBuckets(v int32) *StorageDescriptor {
	s.SetNumberOfBuckets(v)
	return s
}

func (s *StorageDescriptor) SetBucketColumns(v []string) { s.BucketColumns = v }
func (s *StorageDescriptor) WithBucketColumns(v []string) *StorageDescriptor {
	s.SetBucketColumns(v)
	return s
}

func (s *StorageDescriptor) SetParameters(v map[string]string) { s.Parameters = v }
func (s *StorageDescriptor) WithParameters(v map[string]string) *StorageDescriptor {
	s.SetParameters(v)
	return s
}

func (s *StorageDescriptor) Equal(o *StorageDescriptor) bool { return record.Equal(s, o) }
func (s *StorageDescriptor) Hash() int32 { return record.Hash(s) }
func (s *StorageDescriptor) String() string { return record.String(s) }
func (s *StorageDescriptor) Clone() *StorageDescriptor { return record.Clone(s) }

type Table struct {
	Name              *string            `json:"Name,omitempty"`
	DatabaseName      *string            `json:"DatabaseName,omitempty"`
	Description       *string            `json:"Description,omitempty"`
	Owner             *string            `json:"Owner,omitempty"`
	CreateTime        *Timestamp         `json:"CreateTime,omitempty"`
	UpdateTime        *Timestamp         `json:"UpdateTime,omitempty"`
	Retention         *int32             `json:"Retention,omitempty"`
	StorageDescriptor *StorageDescriptor `json:"StorageDescriptor,omitempty"`
	PartitionKeys     []Column           `json:"PartitionKeys,omitempty"`
	TableType         *string            `json:"TableType,omitempty"`
	Parameters        map[string]string  `json:"Parameters,omitempty"`
	CreatedBy         *string            `json:"CreatedBy,omitempty"`
	CatalogId         *string            `json:"CatalogId,omitempty"`
}

func (t *Table) SetName(v string) { t.Name = &v }
func (t *Table) WithName(v string) *Table { t.SetName(v); return t }

func (t *Table) SetDatabaseName(v string) { t.DatabaseName = &v }
func (t *Table) WithDatabaseName(v string) *Table { t.SetDatabaseName(v); return t }

func (t *Table) SetDescription(v string) { t.Description = &v }
func (t *Table) WithDescription(v string) *Table { t.SetDescription(v); return t }

func (t *Table) SetOwner(v string) { t.Owner = &v }
func (t *Table) WithOwner(v string) *Table { t.SetOwner(v); return t }

func (t *Table) SetCreateTime(v time.Time) { t.CreateTime = NewTimestamp(v) }
func (t *Table) WithCreateTime(v time.Time) *Table { t.SetCreateTime(v); return t }

func (t *Table) SetUpdateTime(v time.Time) { t.UpdateTime = NewTimestamp(v) }
func (t *Table) WithUpdateTime(v time.Time) *Table { t.SetUpdateTime(v); return t }

func (t *Table) SetRetention(v int32) { t.Retention = &v }
func (t *Table) WithRetention(v int32) *Table { t.SetRetention(v); return t }

func (t *Table) SetStorageDescriptor(v *StorageDescriptor) { t.StorageDescriptor = v }
func (t *Table) WithStorageDescriptor(v *StorageDescriptor) *Table {
	t.SetStorageDescriptor(v)
	return t
}

func (t *Table) SetPartitionKeys(v []Column) { t.PartitionKeys = v }
func (t *Table) WithPartitionKeys(v []Column) *Table { t.SetPartitionKeys(v); return t }

func (t *Table) SetTableType(v string) { t.TableType = &v }
func (t *Table) WithTableType(v string) *Table { t.SetTableType(v); return t }

func (t *Table) SetParameters(v map[string]string) { t.Parameters = v }
func (t *Table) WithParameters(v map[string]string) *Table { t.SetParameters(v); return t }

func (t *Table) SetCreatedBy(v string) { t.CreatedBy = &v }
func (t *Table) WithCreatedBy(v string) *Table { t.SetCreatedBy(v); return t }

func (t *Table) SetCatalogId(v string) { t.CatalogId = &v }
func (t *Table) WithCatalogId(v string) *Table { t.SetCatalogId(v); return t }

func (t *Table) Equal(o *Table) bool { return record.Equal(t, o) }
func (t *Table) Hash() int32 { return record.Hash(t) }
func (t *Table) String() string { return record.String(t) }
func (t *Table) Clone() *Table { return record.Clone(t) }

// TableVersion é uma versão específica de uma tabela.
type TableVersion struct {
	Table     *Table  `json:"Table,omitempty"`
	VersionId *string `json:"VersionId,omitempty"`
}

func (t *TableVersion) SetTable(v *Table) { t.Table = v }
func (t *TableVersion) WithTable(v *Table) *TableVersion { t.SetTable(v); return t }

func (t *TableVersion) SetVersionId(v string) { t.VersionId = &v }
func (t *TableVersion) WithVersionId(v string) *TableVersion { t.SetVersionId(v); return t }

func (t *TableVersion) Equal(o *TableVersion) bool { return record.Equal(t, o) }
func (t *TableVersion) Hash() int32 { return record.Hash(t) }
func (t *TableVersion) String() string { return record.String(t) }
func (t *TableVersion) Clone() *TableVersion { return record.Clone(t) }

// Partition é uma partição de tabela, identificada pelos seus valores.
type Partition struct {
	Values            []string           `json:"Values,omitempty"`
	DatabaseName      *string            `json:"DatabaseName,omitempty"`
	TableName         *string            `json:"TableName,omitempty"`
	CreationTime      *Timestamp         `json:"CreationTime,omitempty"`
	LastAccessTime    *Timestamp         `json:"LastAccessTime,omitempty"`
	StorageDescriptor *StorageDescriptor `json:"StorageDescriptor,omitempty"`
	Parameters        map[string]string  `json:"Parameters,omitempty"`
	CatalogId         *string            `json:"CatalogId,omitempty"`
}

func (p *Partition) SetValues(v []string) { p.Values = v }
func (p *Partition) WithValues(v []string) *Partition { p.SetValues(v); return p }

func (p *Partition) SetDatabaseName(v string) { p.DatabaseName = &v }
func (p *Partition) WithDatabaseName(v string) *Partition { p.SetDatabaseName(v); return p }

func (p *Partition) SetTableName(v string) { p.TableName = &v }
func (p *Partition) WithTableName(v string) *Partition { p.SetTableName(v); return p }

func (p *Partition) SetCreationTime(v time.Time) { p.CreationTime = NewTimestamp(v) }
func (p *Partition) WithCreationTime(v time.Time) *Partition { p.SetCreationTime(v); return p }

func (p *Partition) SetLastAccessTime(v time.Time) { p.LastAccessTime = NewTimestamp(v) }
func (p *Partition) WithLastAccessTime(v time.Time) *Partition { p.SetLastAccessTime(v); return p }

func (p *Partition) SetStorageDescriptor(v *StorageDescriptor) { p.StorageDescriptor = v }
func (p *Partition) WithStorageDescriptor(v *StorageDescriptor) *Partition {
	p.SetStorageDescriptor(v)
	return p
}

func (p *Partition) SetParameters(v map[string]string) { p.Parameters = v }
func (p *Partition) WithParameters(v map[string]string) *Partition { p.SetParameters(v); return p }

func (p *Partition) SetCatalogId(v string) { p.CatalogId = &v }
func (p *Partition) WithCatalogId(v string) *Partition { p.SetCatalogId(v); return p }

func (p *Partition) Equal(o *Partition) bool { return record.Equal(p, o) }
func (p *Partition) Hash() int32 { return record.Hash(p) }
func (p *Partition) String() string { return record.String(p) }
func (p *Partition) Clone() *Partition { return record.Clone(p) }
