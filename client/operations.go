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

package client

import (
	"context"

	"github.com/raywall/glue-catalog-toolkit/model"
)

// API lista as operações do Glue suportadas. Client, o cache e os mocks de
// teste implementam esta interface.
type API interface {
	GetDatabase(ctx context.Context, req *model.GetDatabaseRequest) (*model.GetDatabaseResult, error)
	GetPartition(ctx context.Context, req *model.GetPartitionRequest) (*model.GetPartitionResult, error)
	GetTableVersion(ctx context.Context, req *model.GetTableVersionRequest) (*model.GetTableVersionResult, error)
	GetTrigger(ctx context.Context, req *model.GetTriggerRequest) (*model.GetTriggerResult, error)
	GetSecurityConfiguration(ctx context.Context, req *model.GetSecurityConfigurationRequest) (*model.GetSecurityConfigurationResult, error)
	GetDevEndpoint(ctx context.Context, req *model.GetDevEndpointRequest) (*model.GetDevEndpointResult, error)
	CreateDevEndpoint(ctx context.Context, req *model.CreateDevEndpointRequest) (*model.CreateDevEndpointResult, error)
	GetJobRun(ctx context.Context, req *model.GetJobRunRequest) (*model.GetJobRunResult, error)
	GetJobRuns(ctx context.Context, req *model.GetJobRunsRequest) (*model.GetJobRunsResult, error)
	GetConnection(ctx context.Context, req *model.GetConnectionRequest) (*model.GetConnectionResult, error)
	GetCrawler(ctx context.Context, req *model.GetCrawlerRequest) (*model.GetCrawlerResult, error)
}

// GetDatabase busca a definição de um database do catálogo.
func (c *Client) GetDatabase(ctx context.Context, req *model.GetDatabaseRequest) (*model.GetDatabaseResult, error) {
	if req != nil && req.CatalogId == nil && c.catalogID != "" {
		req = req.Clone().WithCatalogId(c.catalogID)
	}
	out := &model.GetDatabaseResult{}
	if err := c.invoke(ctx, "GetDatabase", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPartition busca uma partição pelos valores das chaves.
func (c *Client) GetPartition(ctx context.Context, req *model.GetPartitionRequest) (*model.GetPartitionResult, error) {
	if req != nil && req.CatalogId == nil && c.catalogID != "" {
		req = req.Clone().WithCatalogId(c.catalogID)
	}
	out := &model.GetPartitionResult{}
	if err := c.invoke(ctx, "GetPartition", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTableVersion busca uma versão de tabela. Sem VersionId, a atual.
func (c *Client) GetTableVersion(ctx context.Context, req *model.GetTableVersionRequest) (*model.GetTableVersionResult, error) {
	if req != nil && req.CatalogId == nil && c.catalogID != "" {
		req = req.Clone().WithCatalogId(c.catalogID)
	}
	out := &model.GetTableVersionResult{}
	if err := c.invoke(ctx, "GetTableVersion", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTrigger(ctx context.Context, req *model.GetTriggerRequest) (*model.GetTriggerResult, error) {
	out := &model.GetTriggerResult{}
	if err := c.invoke(ctx, "GetTrigger", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSecurityConfiguration(ctx context.Context, req *model.GetSecurityConfigurationRequest) (*model.GetSecurityConfigurationResult, error) {
	out := &model.GetSecurityConfigurationResult{}
	if err := c.invoke(ctx, "GetSecurityConfiguration", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDevEndpoint(ctx context.Context, req *model.GetDevEndpointRequest) (*model.GetDevEndpointResult, error) {
	out := &model.GetDevEndpointResult{}
	if err := c.invoke(ctx, "GetDevEndpoint", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDevEndpoint cria um development endpoint. Não é idempotente e
// portanto não deve ser usado atrás de cache.
func (c *Client) CreateDevEndpoint(ctx context.Context, req *model.CreateDevEndpointRequest) (*model.CreateDevEndpointResult, error) {
	out := &model.CreateDevEndpointResult{}
	if err := c.invoke(ctx, "CreateDevEndpoint", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetJobRun busca o estado atual de uma execução de job.
func (c *Client) GetJobRun(ctx context.Context, req *model.GetJobRunRequest) (*model.GetJobRunResult, error) {
	out := &model.GetJobRunResult{}
	if err := c.invoke(ctx, "GetJobRun", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetJobRuns lista as execuções de um job, uma página por chamada.
func (c *Client) GetJobRuns(ctx context.Context, req *model.GetJobRunsRequest) (*model.GetJobRunsResult, error) {
	out := &model.GetJobRunsResult{}
	if err := c.invoke(ctx, "GetJobRuns", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetConnection(ctx context.Context, req *model.GetConnectionRequest) (*model.GetConnectionResult, error) {
	if req != nil && req.CatalogId == nil && c.catalogID != "" {
		req = req.Clone().WithCatalogId(c.catalogID)
	}
	out := &model.GetConnectionResult{}
	if err := c.invoke(ctx, "GetConnection", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCrawler(ctx context.Context, req *model.GetCrawlerRequest) (*model.GetCrawlerResult, error) {
	out := &model.GetCrawlerResult{}
	if err := c.invoke(ctx, "GetCrawler", req, out); err != nil {
		return nil, err
	}
	return out, nil
}
