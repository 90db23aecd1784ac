/*
Package datastore provides an Entity/Key representation for Cloud Datastore
records.

An Entity is an insertion-ordered mapping from field name to value, carrying
an optional Key and a set of field names excluded from indexing. It behaves
like a dictionary with one persistence extra: Save sends the full current
field mapping through a Connection, replacing whatever was stored for that
key before.

A Key identifies an entity (kind, numeric id or name, optional parent). A
key without an id or name is incomplete; the backend assigns an id on first
save and Save swaps the entity's key for the completed one.

The Connection itself is externally supplied. A production implementation
over the official SDK lives in the clouddatastore subpackage.
*/
package datastore
