// This file is part of uBot.
//
// uBot is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// uBot is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with uBot.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a formatting
// pattern and placeholder values, in the same way as fmt.Errorf(), but the
// pattern is retained so that it can be used to identify the error later:
//
//	const MalformedProgram = "malformed program: %v"
//
//	err := curated.Errorf(MalformedProgram, "unmatched loop")
//
//	if curated.Is(err, MalformedProgram) {
//		fmt.Println("true")
//	}
//
// The Has() function checks whether the pattern occurs anywhere in the chain
// of curated errors. Is() only checks the outermost error.
//
// Sentinal patterns should be stored as an exported const string in the
// package that raises the error.
//
// The Error() function normalises the message so that adjacent duplicate
// parts (separated by ": ") appear only once. This means that a function can
// wrap an error with the same prefix as the error it received without the
// prefix being repeated in the final message:
//
//	turtle: turtle: malformed program
//
// is printed as:
//
//	turtle: malformed program
//
// Curated errors that wrap a value of type error expose it through Unwrap(),
// so the errors.Is() and errors.As() functions of the standard library see
// through them.
package curated
