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

// IsTerminal indica se a execução não muda mais de estado.
func (j JobRunState) IsTerminal() bool {
	switch j {
	case JobRunStateStopped, JobRunStateSucceeded, JobRunStateFailed, JobRunStateTimeout:
		return true
	}
	return false
}

// IsTerminal indica se o crawl já terminou.
func (c CrawlState) IsTerminal() bool {
	switch c {
	case CrawlStateCancelled, CrawlStateSucceeded, CrawlStateFailed:
		return true
	}
	return false
}

// IsSuccess indica uma execução concluída com sucesso.
func (j JobRunState) IsSuccess() bool {
	return j == JobRunStateSucceeded
}
