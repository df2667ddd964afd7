package cli

// boolFlag creates a Flag that sets a bool to true when present.
func boolFlag(target *bool, long, short, desc string) Flag {
	return Flag{
		Long:        long,
		Short:       short,
		Description: desc,
		IsSet: func() bool {
			return *target
		},
		Fn: func(string) error {
			*target = true
			return nil
		},
	}
}

// cfgBoolFlag creates a Flag that passes "true" to a config parse function
// when present.
func cfgBoolFlag(long, short, desc string, isSet func() bool, parse func(string) error) Flag {
	return Flag{
		Long:        long,
		Short:       short,
		Description: desc,
		IsSet:       isSet,
		Fn: func(string) error {
			return parse("true")
		},
	}
}

// stringFlag creates a Flag that stores a string value.
func stringFlag(target *string, long, short, args, desc string) Flag {
	return Flag{
		Long:        long,
		Short:       short,
		Args:        args,
		Description: desc,
		IsSet: func() bool {
			return *target != ""
		},
		Fn: func(value string) error {
			*target = value
			return nil
		},
	}
}

// cfgFlag creates a Flag that delegates to an isSet check and a parse function.
func cfgFlag(long, short, args, desc string, isSet func() bool, parse func(string) error) Flag {
	return Flag{
		Long:        long,
		Short:       short,
		Args:        args,
		Description: desc,
		IsSet:       isSet,
		Fn:          parse,
	}
}
