/*
Package setcover solves exact set covering instances and reports their results.

A Solver turns an instance into a 0/1 integer linear program, gives it to an
ilp.Engine and interprets the outcome as a Result:

	s := setcover.Solver{NewEngine: func() ilp.Engine { return engine.NewPB(engine.DefaultOptions()) }}
	res, err := s.Solve(ins)
	if err != nil {
		return err
	}
	return setcover.Format(os.Stdout, res)

Format writes results as a single line, starting with ResultPrefix and
followed by a JSON object, that other tools can find in the middle of the
program's output and read back with ParseResultLine.
*/
package setcover
