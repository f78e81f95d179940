package wbs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Gender of a user, as reported by the service.
type Gender int

const (
	GenderMale   Gender = 0
	GenderFemale Gender = 1
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unknown"
	}
}

// userPayload is the wire shape of a user object. The service encodes the
// sharing flag as 0/1.
type userPayload struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Shortname string `json:"shortname"`
	Gender    Gender `json:"gender"`
	FatMethod int    `json:"fatmethod"`
	Birthdate int64  `json:"birthdate"`
	IsPublic  int    `json:"ispublic"`
	PublicKey string `json:"publickey"`
}

// User is a profile record plus the query scope for measure fetches. Users
// are created only by Client.ListSharedUsers and Client.LoadUser, never
// constructed directly.
//
// The measures cache and the scoping fields are not safe for concurrent use;
// callers sharing a User across goroutines must serialize access themselves.
type User struct {
	transport *Transport

	ID        int64
	Firstname string
	Lastname  string
	Shortname string
	Gender    Gender
	FatMethod int
	Birthdate int64 // epoch seconds
	Public    bool
	PublicKey string

	query    measureQuery
	measures []*MeasureGroup
}

// measureQuery holds the optional getmeas scoping parameters. A nil field is
// omitted from the request entirely.
type measureQuery struct {
	startDate  *int64
	endDate    *int64
	measType   *MeasureType
	lastUpdate *int64
	category   *Category
	limit      *int
	offset     *int
}

func (q *measureQuery) apply(params url.Values) {
	if q.startDate != nil {
		params.Set("startdate", strconv.FormatInt(*q.startDate, 10))
	}
	if q.endDate != nil {
		params.Set("enddate", strconv.FormatInt(*q.endDate, 10))
	}
	if q.measType != nil {
		params.Set("meastype", strconv.Itoa(int(*q.measType)))
	}
	if q.lastUpdate != nil {
		params.Set("lastupdate", strconv.FormatInt(*q.lastUpdate, 10))
	}
	if q.category != nil {
		params.Set("category", strconv.Itoa(int(*q.category)))
	}
	if q.limit != nil {
		params.Set("limit", strconv.Itoa(*q.limit))
	}
	if q.offset != nil {
		params.Set("offset", strconv.Itoa(*q.offset))
	}
}

func newUser(t *Transport, p userPayload) *User {
	return &User{
		transport: t,
		ID:        p.ID,
		Firstname: p.Firstname,
		Lastname:  p.Lastname,
		Shortname: p.Shortname,
		Gender:    p.Gender,
		FatMethod: p.FatMethod,
		Birthdate: p.Birthdate,
		Public:    p.IsPublic != 0,
		PublicKey: p.PublicKey,
	}
}

// FullName returns "lastname, firstname" with no locale handling.
func (u *User) FullName() string {
	return u.Lastname + ", " + u.Firstname
}

// BirthdateTime returns the birthdate as a time.Time.
func (u *User) BirthdateTime() time.Time {
	return time.Unix(u.Birthdate, 0)
}

// SetStartDate excludes measures taken before ts (epoch seconds) from
// subsequent fetches.
func (u *User) SetStartDate(ts int64) { u.query.startDate = &ts }

// SetEndDate excludes measures taken after ts (epoch seconds) from
// subsequent fetches.
func (u *User) SetEndDate(ts int64) { u.query.endDate = &ts }

// SetMeasureType restricts subsequent fetches to a single measure type.
func (u *User) SetMeasureType(mt MeasureType) { u.query.measType = &mt }

// SetLastUpdate restricts subsequent fetches to entries added or modified
// since ts (epoch seconds).
func (u *User) SetLastUpdate(ts int64) { u.query.lastUpdate = &ts }

// SetCategory restricts subsequent fetches to measurements or objectives.
func (u *User) SetCategory(c Category) { u.query.category = &c }

// SetLimit caps the number of measure groups returned.
func (u *User) SetLimit(n int) { u.query.limit = &n }

// SetOffset skips the n most recent measure groups of the result set.
func (u *User) SetOffset(n int) { u.query.offset = &n }

// FetchMeasures returns the user's measure groups in server order.
//
// When useCache is true and a prior fetch succeeded, the cached groups are
// returned without a network call. Otherwise one getmeas request is issued
// with the mandatory userid/publickey parameters plus whichever scoping
// fields are currently set; the result replaces the cache wholesale. A failed
// fetch leaves any existing cache untouched.
func (u *User) FetchMeasures(ctx context.Context, useCache bool) ([]*MeasureGroup, error) {
	if useCache && u.measures != nil {
		return u.measures, nil
	}

	params := url.Values{}
	params.Set("userid", strconv.FormatInt(u.ID, 10))
	params.Set("publickey", u.PublicKey)
	u.query.apply(params)

	body, err := u.transport.Call(ctx, "measure", "getmeas", params)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Groups []*MeasureGroup `json:"measuregrps"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("%w: malformed getmeas body: %v", ErrProtocol, err)
		}
	}

	groups := payload.Groups
	if groups == nil {
		groups = []*MeasureGroup{}
	}
	u.measures = groups
	return groups, nil
}

// SetSharingEnabled toggles the user's public-sharing flag on the service.
// The validated success of the remote call is the only success signal; no
// response body is consulted. On success the local Public field is updated.
func (u *User) SetSharingEnabled(ctx context.Context, public bool) error {
	params := url.Values{}
	params.Set("userid", strconv.FormatInt(u.ID, 10))
	params.Set("publickey", u.PublicKey)
	if public {
		params.Set("ispublic", "1")
	} else {
		params.Set("ispublic", "0")
	}

	if _, err := u.transport.Call(ctx, "user", "update", params); err != nil {
		return err
	}
	u.Public = public
	return nil
}
