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
	"errors"

	"github.com/raywall/glue-catalog-toolkit/model"
)

// JobRunsAPI é o subconjunto de API usado pelo paginador.
type JobRunsAPI interface {
	GetJobRuns(ctx context.Context, req *model.GetJobRunsRequest) (*model.GetJobRunsResult, error)
}

// GetJobRunsPaginator percorre as páginas de GetJobRuns seguindo NextToken.
type GetJobRunsPaginator struct {
	api       JobRunsAPI
	req       *model.GetJobRunsRequest
	nextToken *string
	firstPage bool
}

// NewGetJobRunsPaginator cria o paginador. O request não é alterado.
func NewGetJobRunsPaginator(api JobRunsAPI, req *model.GetJobRunsRequest) *GetJobRunsPaginator {
	if req == nil {
		req = &model.GetJobRunsRequest{}
	}
	return &GetJobRunsPaginator{
		api:       api,
		req:       req.Clone(),
		nextToken: req.NextToken,
		firstPage: true,
	}
}

// HasMorePages informa se ainda há páginas a buscar.
func (p *GetJobRunsPaginator) HasMorePages() bool {
	return p.firstPage || (p.nextToken != nil && *p.nextToken != "")
}

// NextPage busca a próxima página.
func (p *GetJobRunsPaginator) NextPage(ctx context.Context) (*model.GetJobRunsResult, error) {
	if !p.HasMorePages() {
		return nil, errors.New("client: no more pages available")
	}

	req := p.req.Clone()
	req.NextToken = p.nextToken

	out, err := p.api.GetJobRuns(ctx, req)
	if err != nil {
		return nil, err
	}

	p.firstPage = false
	prev := p.nextToken
	p.nextToken = out.NextToken
	// token repetido encerraria em laço infinito
	if prev != nil && p.nextToken != nil && *prev == *p.nextToken {
		p.nextToken = nil
	}
	return out, nil
}
