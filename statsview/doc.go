// This file is part of GopherSMS.
//
// GopherSMS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSMS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSMS.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview is an optional package built only when the statsview
// build constraint is present.
//
// It provides an HTTP server offering runtime statistics, with graphical
// statistics viewable at:
//
//	localhost:12609/debug/statsview
//
// and standard Go pprof statistics at:
//
//	localhost:12609/debug/pprof/
//
// Underlying functionality provided by github.com/go-echarts/statsview.
package statsview
