// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tokenizer implements the HTML5 tokenization algorithm
// (https://html.spec.whatwg.org/multipage/parsing.html#tokenization):
// it turns a decoded UTF-8 byte slice into a stream of Doctype,
// StartTag, EndTag, Comment, Character and EndOfFile tokens.
//
// The tokenizer does not build a DOM. Tree construction — selecting
// an insertion mode and maintaining the stack of open elements — lives
// in the sibling package tree, which consumes the token stream this
// package produces.
package tokenizer
