// Package matrixio reads and writes matrix fixtures in the numpy savetxt text
// format and assembles them into multiplication test cases.
//
// It lists fixture directories (FilesInDirectory), reads text files line by
// line (ReadLines), parses "# RxC" headers and value rows, groups the
// rand_*-A/-B/-C files of random-size cases, and loads every case of a
// directory concurrently (LoadCases). WriteTxt produces the same format, so
// fixtures can be generated from Go as well.
package matrixio
