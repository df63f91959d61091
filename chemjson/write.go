/*
 * write.go, part of moldoc.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * Moldoc is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 *
 */

package chemjson

import (
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zstd"
)

//Marshal serializes the document.
func (D *Document) Marshal() ([]byte, *Error) {
	ret, err := json.Marshal(D)
	if err != nil {
		return nil, NewError("postprocess", "Document.Marshal", err)
	}
	return ret, nil
}

//Send marshals the document and writes it to out, returns an error or nil.
func (D *Document) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(D); err != nil {
		return NewError("postprocess", "Document.Send", err)
	}
	return nil
}

//SendCompressed writes the document to out as a zstd-compressed JSON
//stream. The compression exists for large trajectories sent over pipes;
//out is caller-supplied, chemjson opens no files.
func (D *Document) SendCompressed(out io.Writer) *Error {
	const funcname = "Document.SendCompressed"
	h, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return NewError("postprocess", funcname, err)
	}
	enc := json.NewEncoder(h)
	if err := enc.Encode(D); err != nil {
		h.Close()
		return NewError("postprocess", funcname, err)
	}
	if err := h.Close(); err != nil {
		return NewError("postprocess", funcname, err)
	}
	return nil
}
