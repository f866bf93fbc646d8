package cookie

import "github.com/indigo-web/utils/uf"

type action struct {
	cookie Cookie
	remove bool
}

// Jar tracks cookie mutations against a baseline and computes the minimal set
// of Set-Cookie entries needed to move a client from the baseline to the
// desired state. Cookies known to already live on the client are registered
// via AddOriginal and produce no wire entries unless mutated.
type Jar struct {
	original map[string]Cookie
	pending  map[string]action
	// names in the order their pending action was first staged. Emission
	// follows this order, so output is deterministic
	order []string
}

func NewJar() *Jar {
	return &Jar{
		original: make(map[string]Cookie),
		pending:  make(map[string]action),
	}
}

// Add stages the cookie to be set on the client. If the same name was already
// staged, even for removal, the last call wins, keeping the position the name
// was first staged at.
func (j *Jar) Add(c Cookie) {
	j.stage(c.Name, action{cookie: c})
}

// AddOriginal records a baseline cookie, i.e. one the client is known to
// already have. Baseline cookies are never emitted on their own, they only
// give removals something to target.
func (j *Jar) AddOriginal(c Cookie) {
	j.original[c.Name] = c
}

// Remove stages a removal. Only the cookie's identity (name, path, domain)
// matters: the emitted entry is an immediate-expiry directive, any other
// attributes of the passed cookie are ignored. If the name was never
// registered as original, the client has nothing to expire, so the removal
// just cancels a staged addition, if any. Same-name conflicts follow the
// last-call-wins rule of Add.
func (j *Jar) Remove(c Cookie) {
	if _, exists := j.original[c.Name]; exists {
		j.stage(c.Name, action{cookie: c, remove: true})
		return
	}

	j.unstage(c.Name)
}

func (j *Jar) stage(name string, act action) {
	if _, staged := j.pending[name]; !staged {
		j.order = append(j.order, name)
	}

	j.pending[name] = act
}

func (j *Jar) unstage(name string) {
	if _, staged := j.pending[name]; !staged {
		return
	}

	delete(j.pending, name)

	for i, staged := range j.order {
		if staged == name {
			j.order = append(j.order[:i], j.order[i+1:]...)
			break
		}
	}
}

// Empty reports whether there's nothing staged, so the delta is trivially
// empty.
func (j *Jar) Empty() bool {
	return len(j.pending) == 0
}

// Delta renders the staged actions into ready Set-Cookie header values in
// staging order. Additions are rendered in full, removals as immediate-expiry
// entries. A cookie which fails to format aborts the whole computation.
func (j *Jar) Delta() ([]string, error) {
	if j.Empty() {
		return nil, nil
	}

	values := make([]string, 0, len(j.order))

	for _, name := range j.order {
		act := j.pending[name]

		var (
			line []byte
			err  error
		)

		if act.remove {
			line, err = AppendExpired(nil, act.cookie)
		} else {
			line, err = AppendSet(nil, act.cookie)
		}

		if err != nil {
			return nil, err
		}

		values = append(values, uf.B2S(line))
	}

	return values, nil
}
