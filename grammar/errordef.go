/*
 * ruparse
 *
 * Copyright 2024 The ruparse Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package grammar

/*
ErrorDef is a grammar-defined error: its Code/Header/Message populate a
perr.Error raised by a Fail parameter or a Fail/Message command, carrying
a "NNN Message / Fail — grammar-defined" taxonomy entry.
*/
type ErrorDef struct {
	Code    int
	Header  string
	Message string
}
