// Package ows11 models the OGC Web Services Common 1.1 schema
// (http://www.opengis.net/ows/1.1).
//
// Every schema complex type is a plain struct carrying encoding/xml tags.
// A Package describes the classes and their structural features with
// stable integer identifiers and gives reflective access to them; a
// Factory creates empty instances. DocumentRoot represents a complete
// document with its single root element.
package ows11
